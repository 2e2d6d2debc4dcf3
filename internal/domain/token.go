package domain

import "time"

type TokenKind string

const (
	KindStamp TokenKind = "STAMP"
	KindBonus TokenKind = "BONUS"
)

// RedemptionToken is a single-use, time-boxed voucher a user presents as a
// QR code. A token is pending (unconsumed, unexpired), consumed, or
// expired — derived states, never stored separately.
type RedemptionToken struct {
	ID              string
	UserID          string
	EstablishmentID string
	Kind            TokenKind
	IssuedAt        time.Time
	ExpiresAt       time.Time
	Consumed        bool
	ConsumedAt      *time.Time
}

func (t *RedemptionToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

func (t *RedemptionToken) Pending(now time.Time) bool {
	return !t.Consumed && !t.Expired(now)
}

type TokenRepository interface {
	CreateToken(token *RedemptionToken) error
	GetTokenByID(tokenID string) (*RedemptionToken, error)
	// ConsumeToken atomically checks exists && !consumed && now < expiresAt
	// and marks the token consumed in one indivisible step. Concurrent
	// callers racing on the same token get exactly one winner; losers get
	// ErrTokenAlreadyConsumed, ErrTokenExpired or ErrTokenNotFound.
	ConsumeToken(tokenID string, now time.Time) (*RedemptionToken, error)
	// DeleteExpiredTokens reclaims storage for tokens past expiry. Purely
	// hygiene: consumption checks expiry on its own.
	DeleteExpiredTokens(before time.Time) (int64, error)
}

// RedemptionProcessor runs the critical section of a merchant scan: the
// atomic token consume, the ledger mutation it implies and the success
// audit write, as one unit of work. The split keeps a partial failure
// between "consume" and "ledger update" impossible on transactional
// storage.
type RedemptionProcessor interface {
	ProcessRedemption(token *RedemptionToken, merchantID string, threshold int32, now time.Time) (*UserProgress, error)
}
