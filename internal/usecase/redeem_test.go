package usecase

import (
	"testing"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/memory"
	validationdto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redeemFixture struct {
	tokens      *memory.TokenStore
	promos      *memory.PromoStore
	progress    *memory.ProgressStore
	validations *memory.ValidationStore
	uc          *DefaultValidationUsecase
}

func newRedeemFixture(t *testing.T, ticketsRequired int32) *redeemFixture {
	t.Helper()
	f := &redeemFixture{
		tokens:      memory.NewTokenStore(),
		promos:      memory.NewPromoStore(),
		progress:    memory.NewProgressStore(),
		validations: memory.NewValidationStore(),
	}

	now := time.Now()
	require.NoError(t, f.promos.CreatePromo(&domain.Promo{
		ID:              "promo-1",
		EstablishmentID: "est-1",
		TicketsRequired: ticketsRequired,
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
		IsActive:        true,
	}))

	processor := memory.NewRedemptionProcessor(f.tokens, f.progress, f.validations)
	audit := NewAuditTrail(f.validations, nil, 16)
	f.uc = NewDefaultValidationUsecase(f.tokens, f.promos, processor, f.validations, audit, nil, nil, nil)
	return f
}

func (f *redeemFixture) issueToken(t *testing.T, id string, kind domain.TokenKind, expiresAt time.Time) *domain.RedemptionToken {
	t.Helper()
	_, err := f.progress.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)

	token := &domain.RedemptionToken{
		ID:              id,
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            kind,
		IssuedAt:        expiresAt.Add(-5 * time.Minute),
		ExpiresAt:       expiresAt,
	}
	require.NoError(t, f.tokens.CreateToken(token))
	return token
}

func (f *redeemFixture) redeem(t *testing.T, tokenID string) *validationdto.RedeemOutput {
	t.Helper()
	output, err := f.uc.Redeem(&validationdto.RedeemInput{
		TokenID:         tokenID,
		MerchantID:      "merchant-1",
		EstablishmentID: "est-1",
	})
	require.NoError(t, err)
	return output
}

func (f *redeemFixture) records(t *testing.T) []*domain.ValidationRecord {
	t.Helper()
	records, err := f.validations.GetRecordsByEstablishment("est-1", domain.RecordFilter{})
	require.NoError(t, err)
	return records
}

func TestRedeemStampToken(t *testing.T) {
	f := newRedeemFixture(t, 10)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))

	output := f.redeem(t, "tok-1")

	assert.Equal(t, domain.OutcomeSuccess, output.Outcome)
	assert.Empty(t, output.Reason)
	assert.Equal(t, int32(1), output.DrinksCount)
	assert.False(t, output.IsComplete)

	records := f.records(t)
	require.Len(t, records, 1)
	assert.Equal(t, domain.OutcomeSuccess, records[0].Outcome)
	assert.Equal(t, "tok-1", records[0].TokenID)
	assert.Equal(t, "merchant-1", records[0].MerchantID)
}

func TestRedeemStampTokenCompletesCard(t *testing.T) {
	f := newRedeemFixture(t, 2)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))
	f.issueToken(t, "tok-2", domain.KindStamp, time.Now().Add(5*time.Minute))

	assert.False(t, f.redeem(t, "tok-1").IsComplete)

	output := f.redeem(t, "tok-2")
	assert.Equal(t, domain.OutcomeSuccess, output.Outcome)
	assert.Equal(t, int32(2), output.DrinksCount)
	assert.True(t, output.IsComplete)
}

func TestRedeemBonusTokenResetsCard(t *testing.T) {
	f := newRedeemFixture(t, 2)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))
	f.issueToken(t, "tok-2", domain.KindStamp, time.Now().Add(5*time.Minute))
	f.issueToken(t, "tok-3", domain.KindBonus, time.Now().Add(5*time.Minute))

	f.redeem(t, "tok-1")
	f.redeem(t, "tok-2")

	output := f.redeem(t, "tok-3")
	assert.Equal(t, domain.OutcomeSuccess, output.Outcome)
	assert.Equal(t, domain.KindBonus, output.Kind)
	assert.Equal(t, int32(0), output.DrinksCount)
	assert.False(t, output.IsComplete)

	progress, err := f.progress.GetProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, int32(0), progress.DrinksCount)
}

func TestRedeemUnknownToken(t *testing.T) {
	f := newRedeemFixture(t, 10)

	output := f.redeem(t, "never-issued")

	assert.Equal(t, domain.OutcomeFailed, output.Outcome)
	assert.Equal(t, domain.ReasonInvalidQR, output.Reason)

	records := f.records(t)
	require.Len(t, records, 1)
	assert.Equal(t, "never-issued", records[0].TokenID)
	assert.Equal(t, domain.ReasonInvalidQR, records[0].Reason)
}

func TestRedeemExpiredToken(t *testing.T) {
	f := newRedeemFixture(t, 10)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(-time.Second))

	output := f.redeem(t, "tok-1")

	assert.Equal(t, domain.OutcomeFailed, output.Outcome)
	assert.Equal(t, domain.ReasonExpired, output.Reason)

	// The decline leaves the ledger untouched.
	progress, err := f.progress.GetProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, int32(0), progress.DrinksCount)
}

func TestRedeemTokenTwice(t *testing.T) {
	f := newRedeemFixture(t, 10)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))

	first := f.redeem(t, "tok-1")
	assert.Equal(t, domain.OutcomeSuccess, first.Outcome)

	second := f.redeem(t, "tok-1")
	assert.Equal(t, domain.OutcomeFailed, second.Outcome)
	assert.Equal(t, domain.ReasonAlreadyUsed, second.Reason)

	// One stamp, not two: the second scan must not touch the ledger.
	progress, err := f.progress.GetProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), progress.DrinksCount)

	// Both attempts are audited.
	records := f.records(t)
	require.Len(t, records, 2)
}

func TestRedeemAtWrongEstablishment(t *testing.T) {
	f := newRedeemFixture(t, 10)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))

	output, err := f.uc.Redeem(&validationdto.RedeemInput{
		TokenID:         "tok-1",
		MerchantID:      "merchant-2",
		EstablishmentID: "est-2",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeFailed, output.Outcome)
	assert.Equal(t, domain.ReasonWrongEstablishment, output.Reason)

	// The token survives the failed scan and stays redeemable at home.
	token, err := f.tokens.GetTokenByID("tok-1")
	require.NoError(t, err)
	assert.False(t, token.Consumed)
}

func TestRedeemAfterPromoDeactivated(t *testing.T) {
	f := newRedeemFixture(t, 10)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))

	require.NoError(t, f.promos.DeactivatePromo("promo-1"))

	output := f.redeem(t, "tok-1")
	assert.Equal(t, domain.OutcomeFailed, output.Outcome)
	assert.Equal(t, domain.ReasonNoActivePromo, output.Reason)
}

func TestRedeemStampSaturatesAtThreshold(t *testing.T) {
	f := newRedeemFixture(t, 2)
	f.issueToken(t, "tok-1", domain.KindStamp, time.Now().Add(5*time.Minute))
	f.issueToken(t, "tok-2", domain.KindStamp, time.Now().Add(5*time.Minute))
	f.issueToken(t, "tok-3", domain.KindStamp, time.Now().Add(5*time.Minute))

	f.redeem(t, "tok-1")
	f.redeem(t, "tok-2")

	// A stray third stamp token succeeds but cannot push past the threshold.
	output := f.redeem(t, "tok-3")
	assert.Equal(t, domain.OutcomeSuccess, output.Outcome)
	assert.Equal(t, int32(2), output.DrinksCount)
}
