package metrics

import (
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LoyaltyMetrics bundles every engine metric.
type LoyaltyMetrics struct {
	// Token issuance
	TokensIssuedTotal       prometheus.CounterVec
	TokenIssueRejectedTotal prometheus.CounterVec

	// Redemptions
	RedemptionsTotal   prometheus.CounterVec
	RedemptionDuration prometheus.HistogramVec

	// Cards completed / bonuses granted
	CardsCompletedTotal prometheus.CounterVec
	BonusesGrantedTotal prometheus.CounterVec

	// Hygiene
	ExpiredTokensSweptTotal prometheus.Counter
	AuditRetriesTotal       prometheus.Counter
	AuditDroppedTotal       prometheus.Counter
}

func NewLoyaltyMetrics() *LoyaltyMetrics {
	return &LoyaltyMetrics{
		TokensIssuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_tokens_issued_total",
				Help: "Redemption tokens issued",
			},
			[]string{"establishment_id", "kind"},
		),

		TokenIssueRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_token_issue_rejected_total",
				Help: "Token issuance attempts rejected by preconditions",
			},
			[]string{"establishment_id", "reason"},
		),

		RedemptionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_redemptions_total",
				Help: "Merchant scan attempts by outcome and decline reason",
			},
			[]string{"establishment_id", "kind", "outcome", "reason"},
		),

		RedemptionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loyalty_redemption_duration_seconds",
				Help:    "End-to-end redeem call duration",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"outcome"},
		),

		CardsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_cards_completed_total",
				Help: "Stamp redemptions that completed a loyalty card",
			},
			[]string{"establishment_id"},
		),

		BonusesGrantedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_bonuses_granted_total",
				Help: "Bonus redemptions that reset a completed card",
			},
			[]string{"establishment_id"},
		),

		ExpiredTokensSweptTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loyalty_expired_tokens_swept_total",
				Help: "Expired tokens removed by the background sweep",
			},
		),

		AuditRetriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loyalty_audit_retries_total",
				Help: "Audit records re-queued after a failed write",
			},
		),

		AuditDroppedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "loyalty_audit_dropped_total",
				Help: "Audit records dropped because the retry queue was full",
			},
		),
	}
}

func (m *LoyaltyMetrics) RecordIssued(establishmentID string, kind domain.TokenKind) {
	if m == nil {
		return
	}
	m.TokensIssuedTotal.WithLabelValues(establishmentID, string(kind)).Inc()
}

func (m *LoyaltyMetrics) RecordIssueRejected(establishmentID, reason string) {
	if m == nil {
		return
	}
	m.TokenIssueRejectedTotal.WithLabelValues(establishmentID, reason).Inc()
}

func (m *LoyaltyMetrics) RecordRedemption(establishmentID string, kind domain.TokenKind, outcome domain.ValidationOutcome, reason domain.DeclineReason, started time.Time) {
	if m == nil {
		return
	}
	m.RedemptionsTotal.WithLabelValues(establishmentID, string(kind), string(outcome), string(reason)).Inc()
	m.RedemptionDuration.WithLabelValues(string(outcome)).Observe(time.Since(started).Seconds())
}

func (m *LoyaltyMetrics) RecordCardCompleted(establishmentID string) {
	if m == nil {
		return
	}
	m.CardsCompletedTotal.WithLabelValues(establishmentID).Inc()
}

func (m *LoyaltyMetrics) RecordBonusGranted(establishmentID string) {
	if m == nil {
		return
	}
	m.BonusesGrantedTotal.WithLabelValues(establishmentID).Inc()
}

func (m *LoyaltyMetrics) RecordSweep(deleted int64) {
	if m == nil {
		return
	}
	m.ExpiredTokensSweptTotal.Add(float64(deleted))
}
