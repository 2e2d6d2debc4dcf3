package usecase

import (
	"errors"
	"testing"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyValidationRepo fails SaveRecord on demand so the retry path can be
// driven deterministically.
type flakyValidationRepo struct {
	failing bool
	saved   []*domain.ValidationRecord
}

func (r *flakyValidationRepo) SaveRecord(record *domain.ValidationRecord) error {
	if r.failing {
		return errors.New("storage unavailable")
	}
	r.saved = append(r.saved, record)
	return nil
}

func (r *flakyValidationRepo) GetRecordsByUser(string, domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return nil, nil
}

func (r *flakyValidationRepo) GetRecordsByEstablishment(string, domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return nil, nil
}

func (r *flakyValidationRepo) GetMonthlyCounts(string, int) ([]*domain.MonthlyValidationCount, error) {
	return nil, nil
}

func TestAuditTrailRecordWritesThrough(t *testing.T) {
	repo := &flakyValidationRepo{}
	audit := NewAuditTrail(repo, nil, 16)

	audit.Record(&domain.ValidationRecord{ID: "r1"})

	require.Len(t, repo.saved, 1)
	assert.Equal(t, 0, audit.Pending())
}

func TestAuditTrailQueuesAndFlushesOnFailure(t *testing.T) {
	repo := &flakyValidationRepo{failing: true}
	audit := NewAuditTrail(repo, nil, 16)

	audit.Record(&domain.ValidationRecord{ID: "r1"})
	audit.Record(&domain.ValidationRecord{ID: "r2"})

	assert.Empty(t, repo.saved)
	assert.Equal(t, 2, audit.Pending())

	// Storage still down: flush requeues, nothing is lost.
	audit.Flush()
	assert.Equal(t, 2, audit.Pending())

	repo.failing = false
	audit.Flush()

	require.Len(t, repo.saved, 2)
	assert.Equal(t, 0, audit.Pending())
}

func TestAuditTrailDropsWhenQueueFull(t *testing.T) {
	repo := &flakyValidationRepo{failing: true}
	audit := NewAuditTrail(repo, nil, 1)

	audit.Record(&domain.ValidationRecord{ID: "r1"})
	audit.Record(&domain.ValidationRecord{ID: "r2"})

	assert.Equal(t, 1, audit.Pending())

	repo.failing = false
	audit.Flush()

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "r1", repo.saved[0].ID)
}
