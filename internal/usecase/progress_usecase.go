package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	rediscache "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/redis"
	validationdto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/validation"
)

type ProgressUsecase interface {
	GetProgress(userID, establishmentID string) (*validationdto.ProgressOutput, error)
}

type DefaultProgressUsecase struct {
	ProgressRepo domain.ProgressRepository
	PromoRepo    domain.PromoRepository
	Cache        *rediscache.ProgressCache
}

func NewDefaultProgressUsecase(
	progressRepo domain.ProgressRepository,
	promoRepo domain.PromoRepository,
	cache *rediscache.ProgressCache) *DefaultProgressUsecase {

	return &DefaultProgressUsecase{
		ProgressRepo: progressRepo,
		PromoRepo:    promoRepo,
		Cache:        cache,
	}
}

// GetProgress serves the user-facing card view. Cache first; on a miss the
// ledger and active promo are authoritative and the result is written back.
// A user who never requested a token simply has zero stamps — reads never
// create ledger rows.
func (uc *DefaultProgressUsecase) GetProgress(userID, establishmentID string) (*validationdto.ProgressOutput, error) {
	if uc.Cache != nil {
		if cached, err := uc.Cache.GetProgress(userID, establishmentID); err == nil && cached != nil {
			return &validationdto.ProgressOutput{
				DrinksCount:     cached.DrinksCount,
				TicketsRequired: cached.TicketsRequired,
			}, nil
		}
	}

	promo, err := uc.PromoRepo.GetActivePromo(establishmentID)
	if err != nil {
		return nil, err
	}

	var drinksCount int32
	progress, err := uc.ProgressRepo.GetProgress(userID, establishmentID)
	switch {
	case err == nil:
		drinksCount = progress.DrinksCount
	case errors.Is(err, domain.ErrProgressNotFound):
		drinksCount = 0
	default:
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	output := &validationdto.ProgressOutput{
		DrinksCount:     drinksCount,
		TicketsRequired: promo.TicketsRequired,
	}

	if uc.Cache != nil {
		if err := uc.Cache.SetProgress(userID, establishmentID, &rediscache.CachedProgress{
			DrinksCount:     output.DrinksCount,
			TicketsRequired: output.TicketsRequired,
		}); err != nil {
			slog.Error("progress cache write failed", "user_id", userID, "error", err.Error())
		}
	}

	return output, nil
}
