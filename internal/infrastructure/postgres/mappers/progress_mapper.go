package mappers

import (
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/postgres/models"
)

func ToDomainProgress(model *models.UserProgressModel) *domain.UserProgress {
	return &domain.UserProgress{
		UserID:          model.UserID,
		EstablishmentID: model.EstablishmentID,
		DrinksCount:     model.DrinksCount,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
