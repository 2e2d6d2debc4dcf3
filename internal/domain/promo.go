package domain

import "time"

// Promo is an establishment-scoped loyalty configuration: how many stamps
// complete a card and what the completed card is worth. At most one promo
// per establishment is active at a time.
type Promo struct {
	ID              string
	EstablishmentID string
	TicketsRequired int32
	TicketCost      float64
	RewardValue     float64
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValid reports whether the promo is redeemable at the given moment.
// Both token issuance and token consumption must re-evaluate against the
// current time: a promo can be deactivated or run out between the two.
func (p *Promo) IsValid(now time.Time) bool {
	if p == nil || !p.IsActive {
		return false
	}
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}

type PromoRepository interface {
	// CreatePromo persists a new promo. When the promo is active, any
	// previously active promo of the same establishment is deactivated in
	// the same unit of work.
	CreatePromo(promo *Promo) error
	DeactivatePromo(promoID string) error
	GetPromoByID(promoID string) (*Promo, error)
	// GetActivePromo returns the establishment's active promo or
	// ErrNoActivePromo.
	GetActivePromo(establishmentID string) (*Promo, error)
}
