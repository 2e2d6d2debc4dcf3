package request

import "time"

type IssueTokenRequest struct {
	UserID          string `json:"userId" binding:"required"`
	EstablishmentID string `json:"establishmentId" binding:"required"`
	Kind            string `json:"kind" binding:"required,oneof=STAMP BONUS"`
}

type RedeemRequest struct {
	TokenID         string `json:"tokenId" binding:"required"`
	MerchantID      string `json:"merchantId" binding:"required"`
	EstablishmentID string `json:"establishmentId" binding:"required"`
}

type CreatePromoRequest struct {
	EstablishmentID string    `json:"establishmentId" binding:"required"`
	TicketsRequired int32     `json:"ticketsRequired" binding:"required"`
	TicketCost      float64   `json:"ticketCost"`
	RewardValue     float64   `json:"rewardValue"`
	StartDate       time.Time `json:"startDate" binding:"required"`
	EndDate         time.Time `json:"endDate" binding:"required"`
	IsActive        bool      `json:"isActive"`
}
