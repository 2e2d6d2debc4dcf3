package domain

import "errors"

var (
	// Issuance preconditions. Recoverable, no side effects.
	ErrNoActivePromo       = errors.New("no active promo for establishment")
	ErrCardAlreadyComplete = errors.New("loyalty card already complete")
	ErrCardNotComplete     = errors.New("loyalty card not complete yet")

	// Token errors. Recoverable, logged as a FAILED validation record.
	ErrTokenNotFound        = errors.New("token not found")
	ErrTokenAlreadyConsumed = errors.New("token already consumed")
	ErrTokenExpired         = errors.New("token expired")

	// Consistency error: a redemption referenced a ledger row that was
	// never created. A broken invariant, not a runtime condition.
	ErrProgressNotFound = errors.New("progress record not found")

	ErrPromoNotFound = errors.New("promo not found")
)
