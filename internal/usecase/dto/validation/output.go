package validationdto

import "github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"

// RedeemOutput is the fail-soft result of a merchant scan. A declined scan
// is a normal UX event: the handler always gets an outcome, never an error,
// for business-rule failures.
type RedeemOutput struct {
	Outcome     domain.ValidationOutcome
	Reason      domain.DeclineReason
	Kind        domain.TokenKind
	DrinksCount int32
	IsComplete  bool
}

type ProgressOutput struct {
	DrinksCount     int32
	TicketsRequired int32
}
