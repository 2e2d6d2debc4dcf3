package memory

import (
	"sync"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
)

type progressKey struct {
	userID          string
	establishmentID string
}

// ProgressStore is a mutex-protected map implementation of
// domain.ProgressRepository with the same per-row atomicity the guarded
// UPDATE gives the postgres repository.
type ProgressStore struct {
	mu      sync.Mutex
	records map[progressKey]*domain.UserProgress
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{records: make(map[progressKey]*domain.UserProgress)}
}

func (s *ProgressStore) GetOrCreateProgress(userID, establishmentID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{userID, establishmentID}
	progress, ok := s.records[key]
	if !ok {
		now := time.Now()
		progress = &domain.UserProgress{
			UserID:          userID,
			EstablishmentID: establishmentID,
			DrinksCount:     0,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		s.records[key] = progress
	}
	copied := *progress
	return &copied, nil
}

func (s *ProgressStore) GetProgress(userID, establishmentID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, ok := s.records[progressKey{userID, establishmentID}]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	copied := *progress
	return &copied, nil
}

func (s *ProgressStore) IncrementIfBelow(userID, establishmentID string, threshold int32) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, ok := s.records[progressKey{userID, establishmentID}]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	if progress.DrinksCount < threshold {
		progress.DrinksCount++
		progress.UpdatedAt = time.Now()
	}
	copied := *progress
	return &copied, nil
}

func (s *ProgressStore) ResetProgress(userID, establishmentID string) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress, ok := s.records[progressKey{userID, establishmentID}]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	progress.DrinksCount = 0
	progress.UpdatedAt = time.Now()

	copied := *progress
	return &copied, nil
}
