package mappers

import (
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
)

func ToGORMValidationRecord(record *domain.ValidationRecord) *models.ValidationRecordModel {
	return &models.ValidationRecordModel{
		ID:              record.ID,
		TokenID:         record.TokenID,
		UserID:          record.UserID,
		EstablishmentID: record.EstablishmentID,
		MerchantID:      record.MerchantID,
		Kind:            string(record.Kind),
		Outcome:         string(record.Outcome),
		Reason:          string(record.Reason),
		DrinksCount:     record.DrinksCount,
		Timestamp:       record.Timestamp,
	}
}

func ToDomainValidationRecord(model *models.ValidationRecordModel) *domain.ValidationRecord {
	return &domain.ValidationRecord{
		ID:              model.ID,
		TokenID:         model.TokenID,
		UserID:          model.UserID,
		EstablishmentID: model.EstablishmentID,
		MerchantID:      model.MerchantID,
		Kind:            domain.TokenKind(model.Kind),
		Outcome:         domain.ValidationOutcome(model.Outcome),
		Reason:          domain.DeclineReason(model.Reason),
		DrinksCount:     model.DrinksCount,
		Timestamp:       model.Timestamp,
	}
}
