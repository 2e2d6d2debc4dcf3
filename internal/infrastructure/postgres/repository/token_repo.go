package repository

import (
	"errors"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTokenRepository struct {
	DB *gorm.DB
}

func NewDefaultTokenRepository(db *gorm.DB) *DefaultTokenRepository {
	return &DefaultTokenRepository{DB: db}
}

func (r *DefaultTokenRepository) CreateToken(token *domain.RedemptionToken) error {
	tokenModel := mappers.ToGORMToken(token)
	return r.DB.Create(tokenModel).Error
}

func (r *DefaultTokenRepository) GetTokenByID(tokenID string) (*domain.RedemptionToken, error) {
	var tokenModel models.RedemptionTokenModel
	if err := r.DB.First(&tokenModel, "id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return mappers.ToDomainToken(&tokenModel), nil
}

// ConsumeToken is a compare-and-swap: the consumed flag and the expiry
// check sit in the WHERE clause of a single UPDATE, so exactly one of any
// number of racing consumers flips the flag. Losers get a secondary read
// purely to classify the failure for merchant-facing messaging.
func (r *DefaultTokenRepository) ConsumeToken(tokenID string, now time.Time) (*domain.RedemptionToken, error) {
	return consumeToken(r.DB, tokenID, now)
}

func consumeToken(db *gorm.DB, tokenID string, now time.Time) (*domain.RedemptionToken, error) {
	res := db.Model(&models.RedemptionTokenModel{}).
		Where("id = ? AND consumed = ? AND expires_at > ?", tokenID, false, now).
		Updates(map[string]interface{}{
			"consumed":    true,
			"consumed_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	var tokenModel models.RedemptionTokenModel
	if err := db.First(&tokenModel, "id = ?", tokenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}

	if res.RowsAffected == 0 {
		token := mappers.ToDomainToken(&tokenModel)
		if token.Consumed {
			return nil, domain.ErrTokenAlreadyConsumed
		}
		if token.Expired(now) {
			return nil, domain.ErrTokenExpired
		}
		// Unreachable unless the row changed between UPDATE and re-read.
		return nil, domain.ErrTokenAlreadyConsumed
	}

	return mappers.ToDomainToken(&tokenModel), nil
}

func (r *DefaultTokenRepository) DeleteExpiredTokens(before time.Time) (int64, error) {
	res := r.DB.
		Where("expires_at < ?", before).
		Delete(&models.RedemptionTokenModel{})
	return res.RowsAffected, res.Error
}
