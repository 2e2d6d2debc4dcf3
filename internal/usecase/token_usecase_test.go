package usecase

import (
	"testing"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/memory"
	tokendto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenFixture struct {
	tokens   *memory.TokenStore
	promos   *memory.PromoStore
	progress *memory.ProgressStore
	uc       *DefaultTokenUsecase
}

func newTokenFixture(t *testing.T) *tokenFixture {
	t.Helper()
	f := &tokenFixture{
		tokens:   memory.NewTokenStore(),
		promos:   memory.NewPromoStore(),
		progress: memory.NewProgressStore(),
	}
	f.uc = NewDefaultTokenUsecase(f.tokens, f.promos, f.progress, nil, 5*time.Minute)
	return f
}

func (f *tokenFixture) withActivePromo(t *testing.T, establishmentID string, ticketsRequired int32) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.promos.CreatePromo(&domain.Promo{
		ID:              "promo-1",
		EstablishmentID: establishmentID,
		TicketsRequired: ticketsRequired,
		StartDate:       now.Add(-time.Hour),
		EndDate:         now.Add(time.Hour),
		IsActive:        true,
	}))
}

func (f *tokenFixture) withDrinks(t *testing.T, userID, establishmentID string, count int32) {
	t.Helper()
	_, err := f.progress.GetOrCreateProgress(userID, establishmentID)
	require.NoError(t, err)
	for i := int32(0); i < count; i++ {
		_, err = f.progress.IncrementIfBelow(userID, establishmentID, count)
		require.NoError(t, err)
	}
}

func TestIssueStampToken(t *testing.T) {
	f := newTokenFixture(t)
	f.withActivePromo(t, "est-1", 10)

	before := time.Now()
	output, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            domain.KindStamp,
	})
	require.NoError(t, err)

	assert.Len(t, output.TokenID, 24)
	assert.Equal(t, domain.KindStamp, output.Kind)
	assert.WithinDuration(t, before.Add(5*time.Minute), output.ExpiresAt, 2*time.Second)

	token, err := f.tokens.GetTokenByID(output.TokenID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, "est-1", token.EstablishmentID)
	assert.True(t, token.Pending(time.Now()))
}

func TestIssueTokenIDsAreUnique(t *testing.T) {
	f := newTokenFixture(t)
	f.withActivePromo(t, "est-1", 10)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		output, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
			UserID:          "user-1",
			EstablishmentID: "est-1",
			Kind:            domain.KindStamp,
		})
		require.NoError(t, err)
		assert.False(t, seen[output.TokenID])
		seen[output.TokenID] = true
	}
}

func TestIssueTokenWithoutActivePromo(t *testing.T) {
	f := newTokenFixture(t)

	_, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            domain.KindStamp,
	})
	assert.ErrorIs(t, err, domain.ErrNoActivePromo)
}

func TestIssueTokenWithExpiredPromoWindow(t *testing.T) {
	f := newTokenFixture(t)
	now := time.Now()
	require.NoError(t, f.promos.CreatePromo(&domain.Promo{
		ID:              "promo-1",
		EstablishmentID: "est-1",
		TicketsRequired: 10,
		StartDate:       now.Add(-48 * time.Hour),
		EndDate:         now.Add(-24 * time.Hour),
		IsActive:        true,
	}))

	_, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            domain.KindStamp,
	})
	assert.ErrorIs(t, err, domain.ErrNoActivePromo)
}

func TestIssueStampTokenOnCompleteCard(t *testing.T) {
	f := newTokenFixture(t)
	f.withActivePromo(t, "est-1", 3)
	f.withDrinks(t, "user-1", "est-1", 3)

	_, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            domain.KindStamp,
	})
	assert.ErrorIs(t, err, domain.ErrCardAlreadyComplete)
}

func TestIssueBonusToken(t *testing.T) {
	f := newTokenFixture(t)
	f.withActivePromo(t, "est-1", 3)

	// Incomplete card: no bonus yet.
	_, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            domain.KindBonus,
	})
	assert.ErrorIs(t, err, domain.ErrCardNotComplete)

	f.withDrinks(t, "user-1", "est-1", 3)

	output, err := f.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          "user-1",
		EstablishmentID: "est-1",
		Kind:            domain.KindBonus,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindBonus, output.Kind)
}
