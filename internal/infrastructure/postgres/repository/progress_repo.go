package repository

import (
	"errors"
	"fmt"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultProgressRepository struct {
	DB *gorm.DB
}

func NewDefaultProgressRepository(db *gorm.DB) *DefaultProgressRepository {
	return &DefaultProgressRepository{DB: db}
}

func (r *DefaultProgressRepository) GetOrCreateProgress(userID, establishmentID string) (*domain.UserProgress, error) {
	progressModel := models.UserProgressModel{
		UserID:          userID,
		EstablishmentID: establishmentID,
	}
	// ON CONFLICT DO NOTHING + re-read keeps concurrent first issuances
	// from failing on the unique index.
	if err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&progressModel).Error; err != nil {
		return nil, fmt.Errorf("creating progress row: %w", err)
	}

	var current models.UserProgressModel
	if err := r.DB.
		Where("user_id = ? AND establishment_id = ?", userID, establishmentID).
		First(&current).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainProgress(&current), nil
}

func (r *DefaultProgressRepository) GetProgress(userID, establishmentID string) (*domain.UserProgress, error) {
	var progressModel models.UserProgressModel
	if err := r.DB.
		Where("user_id = ? AND establishment_id = ?", userID, establishmentID).
		First(&progressModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgressNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProgress(&progressModel), nil
}

// IncrementIfBelow is a guarded UPDATE: the threshold check lives in the
// WHERE clause, so two terminals validating the same user at once cannot
// push the counter past the threshold. Zero rows affected means either the
// counter saturated or the row is missing; the re-read tells them apart.
func (r *DefaultProgressRepository) IncrementIfBelow(userID, establishmentID string, threshold int32) (*domain.UserProgress, error) {
	res := r.DB.Model(&models.UserProgressModel{}).
		Where("user_id = ? AND establishment_id = ? AND drinks_count < ?", userID, establishmentID, threshold).
		Update("drinks_count", gorm.Expr("drinks_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	return r.GetProgress(userID, establishmentID)
}

func (r *DefaultProgressRepository) ResetProgress(userID, establishmentID string) (*domain.UserProgress, error) {
	res := r.DB.Model(&models.UserProgressModel{}).
		Where("user_id = ? AND establishment_id = ?", userID, establishmentID).
		Update("drinks_count", 0)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrProgressNotFound
	}
	return r.GetProgress(userID, establishmentID)
}
