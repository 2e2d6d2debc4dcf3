package repository

import (
	"fmt"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/mappers"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RedemptionTxRepository executes the critical section of a merchant scan
// as one database transaction: consume CAS, ledger mutation, success audit
// row. Either all three land or none do, so a crash between "consume" and
// "ledger update" cannot strand a consumed token without its stamp.
type RedemptionTxRepository struct {
	DB *gorm.DB
}

func NewRedemptionTxRepository(db *gorm.DB) *RedemptionTxRepository {
	return &RedemptionTxRepository{DB: db}
}

func (r *RedemptionTxRepository) ProcessRedemption(
	token *domain.RedemptionToken,
	merchantID string,
	threshold int32,
	now time.Time,
) (*domain.UserProgress, error) {
	var progress *domain.UserProgress

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		consumed, err := consumeToken(tx, token.ID, now)
		if err != nil {
			return err
		}

		progressRepo := &DefaultProgressRepository{DB: tx}
		switch consumed.Kind {
		case domain.KindStamp:
			progress, err = progressRepo.IncrementIfBelow(token.UserID, token.EstablishmentID, threshold)
		case domain.KindBonus:
			progress, err = progressRepo.ResetProgress(token.UserID, token.EstablishmentID)
		default:
			err = fmt.Errorf("unknown token kind %q", consumed.Kind)
		}
		if err != nil {
			return err
		}

		record := &domain.ValidationRecord{
			ID:              uuid.New().String(),
			TokenID:         token.ID,
			UserID:          token.UserID,
			EstablishmentID: token.EstablishmentID,
			MerchantID:      merchantID,
			Kind:            consumed.Kind,
			Outcome:         domain.OutcomeSuccess,
			DrinksCount:     progress.DrinksCount,
			Timestamp:       now,
		}
		return tx.Create(mappers.ToGORMValidationRecord(record)).Error
	})
	if err != nil {
		return nil, err
	}

	return progress, nil
}
