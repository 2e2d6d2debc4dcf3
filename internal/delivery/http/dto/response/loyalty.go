package response

import "time"

type IssueTokenResponse struct {
	TokenID   string    `json:"tokenId"`
	Kind      string    `json:"kind"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RedeemResponse struct {
	Outcome     string `json:"outcome"`
	Reason      string `json:"reason,omitempty"`
	Kind        string `json:"kind,omitempty"`
	DrinksCount int32  `json:"drinksCount"`
	IsComplete  bool   `json:"isComplete"`
}

type ProgressResponse struct {
	DrinksCount     int32 `json:"drinksCount"`
	TicketsRequired int32 `json:"ticketsRequired"`
}

type ValidationRecordResponse struct {
	ID              string    `json:"id"`
	TokenID         string    `json:"tokenId"`
	UserID          string    `json:"userId"`
	EstablishmentID string    `json:"establishmentId"`
	MerchantID      string    `json:"merchantId,omitempty"`
	Kind            string    `json:"kind"`
	Outcome         string    `json:"outcome"`
	Reason          string    `json:"reason,omitempty"`
	DrinksCount     int32     `json:"drinksCount"`
	Timestamp       time.Time `json:"timestamp"`
}

type MonthlyCountResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type PromoResponse struct {
	ID              string    `json:"id"`
	EstablishmentID string    `json:"establishmentId"`
	TicketsRequired int32     `json:"ticketsRequired"`
	TicketCost      float64   `json:"ticketCost"`
	RewardValue     float64   `json:"rewardValue"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
}

type LeaderboardEntryResponse struct {
	UserID string `json:"userId"`
	Count  int64  `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
