package mappers

import (
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
)

func ToGORMToken(token *domain.RedemptionToken) *models.RedemptionTokenModel {
	return &models.RedemptionTokenModel{
		ID:              token.ID,
		UserID:          token.UserID,
		EstablishmentID: token.EstablishmentID,
		Kind:            string(token.Kind),
		IssuedAt:        token.IssuedAt,
		ExpiresAt:       token.ExpiresAt,
		Consumed:        token.Consumed,
		ConsumedAt:      token.ConsumedAt,
	}
}

func ToDomainToken(model *models.RedemptionTokenModel) *domain.RedemptionToken {
	return &domain.RedemptionToken{
		ID:              model.ID,
		UserID:          model.UserID,
		EstablishmentID: model.EstablishmentID,
		Kind:            domain.TokenKind(model.Kind),
		IssuedAt:        model.IssuedAt,
		ExpiresAt:       model.ExpiresAt,
		Consumed:        model.Consumed,
		ConsumedAt:      model.ConsumedAt,
	}
}
