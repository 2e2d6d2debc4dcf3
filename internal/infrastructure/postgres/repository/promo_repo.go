package repository

import (
	"errors"
	"fmt"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPromoRepository struct {
	DB *gorm.DB
}

func NewDefaultPromoRepository(db *gorm.DB) *DefaultPromoRepository {
	return &DefaultPromoRepository{DB: db}
}

// CreatePromo inserts the promo and, when it is active, deactivates any
// prior active promo of the establishment inside the same transaction, so
// the one-active-promo invariant holds even under concurrent creates.
func (r *DefaultPromoRepository) CreatePromo(promo *domain.Promo) error {
	promoModel := mappers.ToGORMPromo(promo)
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if promoModel.IsActive {
			if err := tx.Model(&models.PromoModel{}).
				Where("establishment_id = ? AND is_active = ?", promoModel.EstablishmentID, true).
				Update("is_active", false).Error; err != nil {
				return fmt.Errorf("deactivating prior promos: %w", err)
			}
		}
		return tx.Create(promoModel).Error
	})
}

func (r *DefaultPromoRepository) DeactivatePromo(promoID string) error {
	res := r.DB.Model(&models.PromoModel{}).
		Where("id = ?", promoID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPromoNotFound
	}
	return nil
}

func (r *DefaultPromoRepository) GetPromoByID(promoID string) (*domain.Promo, error) {
	var promoModel models.PromoModel
	if err := r.DB.First(&promoModel, "id = ?", promoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPromoNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPromo(&promoModel), nil
}

func (r *DefaultPromoRepository) GetActivePromo(establishmentID string) (*domain.Promo, error) {
	var promoModel models.PromoModel
	if err := r.DB.
		Where("establishment_id = ? AND is_active = ?", establishmentID, true).
		Order("created_at DESC").
		First(&promoModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoActivePromo
		}
		return nil, err
	}
	return mappers.ToDomainPromo(&promoModel), nil
}
