package kafka

import "time"

type ValidationEvent struct {
	TokenID         string    `json:"token_id"`
	UserID          string    `json:"user_id"`
	EstablishmentID string    `json:"establishment_id"`
	MerchantID      string    `json:"merchant_id"`
	Kind            string    `json:"kind"`
	Outcome         string    `json:"outcome"`
	Reason          string    `json:"reason,omitempty"`
	DrinksCount     int32     `json:"drinks_count"`
	IsComplete      bool      `json:"is_complete"`
	Timestamp       time.Time `json:"timestamp"`
}
