package memory

import (
	"sync"
	"testing"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressStoreGetOrCreateIdempotent(t *testing.T) {
	store := NewProgressStore()

	first, err := store.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, int32(0), first.DrinksCount)

	_, err = store.IncrementIfBelow("user-1", "est-1", 10)
	require.NoError(t, err)

	// A repeated GetOrCreate must return the existing row, not reset it.
	again, err := store.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), again.DrinksCount)
}

func TestProgressStoreGetMissing(t *testing.T) {
	store := NewProgressStore()

	_, err := store.GetProgress("user-1", "est-1")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestProgressStoreIncrementSaturatesAtThreshold(t *testing.T) {
	store := NewProgressStore()
	_, err := store.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)

	const threshold = int32(3)
	for i := int32(1); i <= threshold; i++ {
		progress, err := store.IncrementIfBelow("user-1", "est-1", threshold)
		require.NoError(t, err)
		assert.Equal(t, i, progress.DrinksCount)
	}

	// At the threshold further increments are silent no-ops.
	progress, err := store.IncrementIfBelow("user-1", "est-1", threshold)
	require.NoError(t, err)
	assert.Equal(t, threshold, progress.DrinksCount)
}

func TestProgressStoreIncrementMissing(t *testing.T) {
	store := NewProgressStore()

	_, err := store.IncrementIfBelow("user-1", "est-1", 10)
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestProgressStoreReset(t *testing.T) {
	store := NewProgressStore()
	_, err := store.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = store.IncrementIfBelow("user-1", "est-1", 10)
		require.NoError(t, err)
	}

	progress, err := store.ResetProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, int32(0), progress.DrinksCount)

	_, err = store.ResetProgress("user-2", "est-1")
	assert.ErrorIs(t, err, domain.ErrProgressNotFound)
}

func TestProgressStoreConcurrentIncrementsNeverExceedThreshold(t *testing.T) {
	store := NewProgressStore()
	_, err := store.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)

	const threshold = int32(10)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.IncrementIfBelow("user-1", "est-1", threshold)
		}()
	}
	wg.Wait()

	progress, err := store.GetProgress("user-1", "est-1")
	require.NoError(t, err)
	assert.Equal(t, threshold, progress.DrinksCount)
}

func TestProgressStoreKeysAreScopedPerEstablishment(t *testing.T) {
	store := NewProgressStore()
	_, err := store.GetOrCreateProgress("user-1", "est-1")
	require.NoError(t, err)
	_, err = store.GetOrCreateProgress("user-1", "est-2")
	require.NoError(t, err)

	_, err = store.IncrementIfBelow("user-1", "est-1", 10)
	require.NoError(t, err)

	other, err := store.GetProgress("user-1", "est-2")
	require.NoError(t, err)
	assert.Equal(t, int32(0), other.DrinksCount)
}
