package repository

import (
	"fmt"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultValidationRepository struct {
	DB *gorm.DB
}

func NewDefaultValidationRepository(db *gorm.DB) *DefaultValidationRepository {
	return &DefaultValidationRepository{DB: db}
}

func (r *DefaultValidationRepository) SaveRecord(record *domain.ValidationRecord) error {
	return r.DB.Create(mappers.ToGORMValidationRecord(record)).Error
}

func (r *DefaultValidationRepository) GetRecordsByUser(userID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return r.queryRecords(r.DB.Where("user_id = ?", userID), filter)
}

func (r *DefaultValidationRepository) GetRecordsByEstablishment(establishmentID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	return r.queryRecords(r.DB.Where("establishment_id = ?", establishmentID), filter)
}

func (r *DefaultValidationRepository) queryRecords(query *gorm.DB, filter domain.RecordFilter) ([]*domain.ValidationRecord, error) {
	query = query.Model(&models.ValidationRecordModel{})
	if !filter.From.IsZero() {
		query = query.Where("timestamp >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("timestamp <= ?", filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var recordModels []models.ValidationRecordModel
	if err := query.Order("timestamp DESC").Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find validation records: %w", err)
	}

	records := make([]*domain.ValidationRecord, len(recordModels))
	for i, recordModel := range recordModels {
		records[i] = mappers.ToDomainValidationRecord(&recordModel)
	}
	return records, nil
}

func (r *DefaultValidationRepository) GetMonthlyCounts(establishmentID string, year int) ([]*domain.MonthlyValidationCount, error) {
	type monthlyAgg struct {
		Month int
		Count int64
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	var rows []monthlyAgg
	if err := r.DB.Model(&models.ValidationRecordModel{}).
		Select("EXTRACT(MONTH FROM timestamp)::int AS month, COUNT(*) AS count").
		Where("establishment_id = ? AND outcome = ?", establishmentID, string(domain.OutcomeSuccess)).
		Where("timestamp >= ? AND timestamp < ?", from, to).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("monthly counts agg: %w", err)
	}

	counts := make([]*domain.MonthlyValidationCount, len(rows))
	for i, row := range rows {
		counts[i] = &domain.MonthlyValidationCount{
			Year:  year,
			Month: time.Month(row.Month),
			Count: row.Count,
		}
	}
	return counts, nil
}
