package memory

import (
	"testing"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRecord(t *testing.T, store *ValidationStore, id, userID, establishmentID string, outcome domain.ValidationOutcome, ts time.Time) {
	t.Helper()
	require.NoError(t, store.SaveRecord(&domain.ValidationRecord{
		ID:              id,
		TokenID:         "tok-" + id,
		UserID:          userID,
		EstablishmentID: establishmentID,
		Outcome:         outcome,
		Timestamp:       ts,
	}))
}

func TestValidationStoreQueriesNewestFirst(t *testing.T) {
	store := NewValidationStore()
	base := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

	saveRecord(t, store, "r1", "user-1", "est-1", domain.OutcomeSuccess, base)
	saveRecord(t, store, "r2", "user-1", "est-1", domain.OutcomeFailed, base.Add(time.Hour))
	saveRecord(t, store, "r3", "user-2", "est-1", domain.OutcomeSuccess, base.Add(2*time.Hour))

	records, err := store.GetRecordsByUser("user-1", domain.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r2", records[0].ID)
	assert.Equal(t, "r1", records[1].ID)

	records, err = store.GetRecordsByEstablishment("est-1", domain.RecordFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r3", records[0].ID)
}

func TestValidationStoreFilterWindow(t *testing.T) {
	store := NewValidationStore()
	base := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

	saveRecord(t, store, "r1", "user-1", "est-1", domain.OutcomeSuccess, base)
	saveRecord(t, store, "r2", "user-1", "est-1", domain.OutcomeSuccess, base.Add(time.Hour))
	saveRecord(t, store, "r3", "user-1", "est-1", domain.OutcomeSuccess, base.Add(2*time.Hour))

	records, err := store.GetRecordsByUser("user-1", domain.RecordFilter{
		From: base.Add(30 * time.Minute),
		To:   base.Add(90 * time.Minute),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "r2", records[0].ID)
}

func TestValidationStoreMonthlyCountsSuccessOnly(t *testing.T) {
	store := NewValidationStore()

	saveRecord(t, store, "r1", "user-1", "est-1", domain.OutcomeSuccess, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	saveRecord(t, store, "r2", "user-1", "est-1", domain.OutcomeSuccess, time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC))
	saveRecord(t, store, "r3", "user-1", "est-1", domain.OutcomeFailed, time.Date(2026, time.January, 21, 0, 0, 0, 0, time.UTC))
	saveRecord(t, store, "r4", "user-1", "est-1", domain.OutcomeSuccess, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	saveRecord(t, store, "r5", "user-1", "est-1", domain.OutcomeSuccess, time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC))
	saveRecord(t, store, "r6", "user-1", "est-2", domain.OutcomeSuccess, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC))

	counts, err := store.GetMonthlyCounts("est-1", 2026)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, time.January, counts[0].Month)
	assert.Equal(t, int64(2), counts[0].Count)
	assert.Equal(t, time.March, counts[1].Month)
	assert.Equal(t, int64(1), counts[1].Count)
}
