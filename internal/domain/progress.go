package domain

import "time"

// UserProgress is the stamp counter for one user at one establishment.
// Created lazily on first token issuance, mutated only through redemption,
// never deleted. DrinksCount stays within [0, ticketsRequired] of the
// establishment's active promo.
type UserProgress struct {
	UserID          string
	EstablishmentID string
	DrinksCount     int32
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProgressRepository interface {
	// GetOrCreateProgress returns the existing counter or persists a fresh
	// one with DrinksCount = 0.
	GetOrCreateProgress(userID, establishmentID string) (*UserProgress, error)
	GetProgress(userID, establishmentID string) (*UserProgress, error)
	// IncrementIfBelow adds one stamp only while DrinksCount < threshold,
	// atomically per (user, establishment) row. At or above the threshold
	// the counter is left unchanged: a stale STAMP token redeemed after the
	// card was completed elsewhere must not overflow it. Returns the
	// post-state. A missing row is ErrProgressNotFound — callers must have
	// called GetOrCreateProgress at issuance time.
	IncrementIfBelow(userID, establishmentID string, threshold int32) (*UserProgress, error)
	// ResetProgress sets DrinksCount back to 0. Used on BONUS consumption.
	// A missing row is ErrProgressNotFound.
	ResetProgress(userID, establishmentID string) (*UserProgress, error)
}
