package usecase

import (
	"errors"
	"fmt"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	promodto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/promo"
	"github.com/google/uuid"
)

// Completion thresholds seen in production sit between 1 and 10 stamps.
const (
	minTicketsRequired = 1
	maxTicketsRequired = 10
)

var (
	ErrInvalidTicketsRequired = errors.New("tickets required must be between 1 and 10")
	ErrInvalidPromoWindow     = errors.New("promo start date must precede end date")
)

type PromoUsecase interface {
	CreatePromo(input *promodto.CreatePromoInput) (*domain.Promo, error)
	DeactivatePromo(promoID string) error
	GetActivePromo(establishmentID string) (*domain.Promo, error)
}

type DefaultPromoUsecase struct {
	PromoRepo domain.PromoRepository
}

func NewDefaultPromoUsecase(promoRepo domain.PromoRepository) *DefaultPromoUsecase {
	return &DefaultPromoUsecase{PromoRepo: promoRepo}
}

// CreatePromo persists a new promo; activating it deactivates any prior
// active promo of the establishment in the same unit of work, keeping the
// one-active-promo invariant.
func (uc *DefaultPromoUsecase) CreatePromo(input *promodto.CreatePromoInput) (*domain.Promo, error) {
	if input.TicketsRequired < minTicketsRequired || input.TicketsRequired > maxTicketsRequired {
		return nil, ErrInvalidTicketsRequired
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, ErrInvalidPromoWindow
	}

	promo := &domain.Promo{
		ID:              uuid.New().String(),
		EstablishmentID: input.EstablishmentID,
		TicketsRequired: input.TicketsRequired,
		TicketCost:      input.TicketCost,
		RewardValue:     input.RewardValue,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		IsActive:        input.IsActive,
	}
	if err := uc.PromoRepo.CreatePromo(promo); err != nil {
		return nil, fmt.Errorf("persisting promo: %w", err)
	}
	return promo, nil
}

func (uc *DefaultPromoUsecase) DeactivatePromo(promoID string) error {
	return uc.PromoRepo.DeactivatePromo(promoID)
}

func (uc *DefaultPromoUsecase) GetActivePromo(establishmentID string) (*domain.Promo, error) {
	return uc.PromoRepo.GetActivePromo(establishmentID)
}
