package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
)

type ValidationStore struct {
	mu      sync.Mutex
	records []*domain.ValidationRecord
}

func NewValidationStore() *ValidationStore {
	return &ValidationStore{}
}

func (s *ValidationStore) SaveRecord(record *domain.ValidationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

func (s *ValidationStore) GetRecordsByUser(userID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return s.query(func(r *domain.ValidationRecord) bool { return r.UserID == userID }, filter)
}

func (s *ValidationStore) GetRecordsByEstablishment(establishmentID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return s.query(func(r *domain.ValidationRecord) bool { return r.EstablishmentID == establishmentID }, filter)
}

func (s *ValidationStore) query(match func(*domain.ValidationRecord) bool, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*domain.ValidationRecord
	for _, record := range s.records {
		if !match(record) {
			continue
		}
		if !filter.From.IsZero() && record.Timestamp.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && record.Timestamp.After(filter.To) {
			continue
		}
		copied := *record
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.After(result[j].Timestamp)
	})
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *ValidationStore) GetMonthlyCounts(establishmentID string, year int) ([]*domain.MonthlyValidationCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byMonth := make(map[int]int64)
	for _, record := range s.records {
		if record.EstablishmentID != establishmentID || record.Outcome != domain.OutcomeSuccess {
			continue
		}
		if record.Timestamp.Year() != year {
			continue
		}
		byMonth[int(record.Timestamp.Month())]++
	}

	months := make([]int, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Ints(months)

	counts := make([]*domain.MonthlyValidationCount, 0, len(months))
	for _, month := range months {
		counts = append(counts, &domain.MonthlyValidationCount{
			Year:  year,
			Month: time.Month(month),
			Count: byMonth[month],
		})
	}
	return counts, nil
}
