package promodto

import "time"

type CreatePromoInput struct {
	EstablishmentID string
	TicketsRequired int32
	TicketCost      float64
	RewardValue     float64
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
}
