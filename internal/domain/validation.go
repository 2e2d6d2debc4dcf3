package domain

import "time"

type ValidationOutcome string

const (
	OutcomeSuccess ValidationOutcome = "SUCCESS"
	OutcomeFailed  ValidationOutcome = "FAILED"
)

// DeclineReason is the closed set of merchant-facing decline causes.
type DeclineReason string

const (
	ReasonInvalidQR          DeclineReason = "INVALID_QR"
	ReasonNoActivePromo      DeclineReason = "NO_ACTIVE_PROMO"
	ReasonWrongEstablishment DeclineReason = "WRONG_ESTABLISHMENT"
	ReasonAlreadyUsed        DeclineReason = "ALREADY_USED"
	ReasonExpired            DeclineReason = "EXPIRED"
)

// ValidationRecord is one append-only audit entry per redemption attempt,
// successful or not, so history and leaderboards can tell genuine activity
// from failed scans.
type ValidationRecord struct {
	ID              string
	TokenID         string
	UserID          string
	EstablishmentID string
	MerchantID      string
	Kind            TokenKind
	Outcome         ValidationOutcome
	Reason          DeclineReason
	DrinksCount     int32
	Timestamp       time.Time
}

type MonthlyValidationCount struct {
	Year  int
	Month time.Month
	Count int64
}

// RecordFilter narrows history queries. Zero values mean "no bound".
type RecordFilter struct {
	From  time.Time
	To    time.Time
	Limit int
}

type ValidationRepository interface {
	SaveRecord(record *ValidationRecord) error
	GetRecordsByUser(userID string, filter RecordFilter) ([]*ValidationRecord, error)
	GetRecordsByEstablishment(establishmentID string, filter RecordFilter) ([]*ValidationRecord, error)
	// GetMonthlyCounts aggregates successful validations per calendar month
	// for the merchant history view.
	GetMonthlyCounts(establishmentID string, year int) ([]*MonthlyValidationCount, error)
}
