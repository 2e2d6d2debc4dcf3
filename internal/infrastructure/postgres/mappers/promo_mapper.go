package mappers

import (
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
)

func ToGORMPromo(promo *domain.Promo) *models.PromoModel {
	return &models.PromoModel{
		ID:              promo.ID,
		EstablishmentID: promo.EstablishmentID,
		TicketsRequired: promo.TicketsRequired,
		TicketCost:      promo.TicketCost,
		RewardValue:     promo.RewardValue,
		StartDate:       promo.StartDate,
		EndDate:         promo.EndDate,
		IsActive:        promo.IsActive,
	}
}

func ToDomainPromo(model *models.PromoModel) *domain.Promo {
	return &domain.Promo{
		ID:              model.ID,
		EstablishmentID: model.EstablishmentID,
		TicketsRequired: model.TicketsRequired,
		TicketCost:      model.TicketCost,
		RewardValue:     model.RewardValue,
		StartDate:       model.StartDate,
		EndDate:         model.EndDate,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
