package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	publisher "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/kafka"
	validationdto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/validation"
	"github.com/google/uuid"
)

// Redeem handles a merchant scan. Business declines come back as a FAILED
// outcome, never as an error: the merchant needs a "why declined" message,
// not a stack trace. Every attempt, declined or not, leaves exactly one
// validation record.
func (uc *DefaultValidationUsecase) Redeem(input *validationdto.RedeemInput) (*validationdto.RedeemOutput, error) {
	started := time.Now()
	now := started

	// Step 1: token lookup. An unknown id is an invalid QR, not an error.
	token, err := uc.TokenRepo.GetTokenByID(input.TokenID)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			unknown := &domain.RedemptionToken{ID: input.TokenID, EstablishmentID: input.EstablishmentID}
			return uc.decline(unknown, input.MerchantID, domain.ReasonInvalidQR, started), nil
		}
		return nil, fmt.Errorf("loading token: %w", err)
	}

	// Step 2: re-validate the promo against current time. It may have been
	// deactivated or run out since issuance.
	promo, err := uc.PromoRepo.GetActivePromo(token.EstablishmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActivePromo) {
			return uc.decline(token, input.MerchantID, domain.ReasonNoActivePromo, started), nil
		}
		return nil, fmt.Errorf("loading promo: %w", err)
	}
	if !promo.IsValid(now) {
		return uc.decline(token, input.MerchantID, domain.ReasonNoActivePromo, started), nil
	}

	// Step 3: the token only counts at the establishment it was issued for.
	if token.EstablishmentID != input.EstablishmentID {
		return uc.decline(token, input.MerchantID, domain.ReasonWrongEstablishment, started), nil
	}

	// Steps 4-6: atomic consume + ledger mutation + success audit record.
	progress, err := uc.Processor.ProcessRedemption(token, input.MerchantID, promo.TicketsRequired, now)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenAlreadyConsumed):
			return uc.decline(token, input.MerchantID, domain.ReasonAlreadyUsed, started), nil
		case errors.Is(err, domain.ErrTokenExpired):
			return uc.decline(token, input.MerchantID, domain.ReasonExpired, started), nil
		case errors.Is(err, domain.ErrTokenNotFound):
			// Swept between lookup and consume; only expired tokens get swept.
			return uc.decline(token, input.MerchantID, domain.ReasonExpired, started), nil
		default:
			// Includes ErrProgressNotFound: a broken invariant, surfaced
			// loudly instead of shown to the merchant as a decline.
			return nil, fmt.Errorf("processing redemption: %w", err)
		}
	}

	isComplete := token.Kind == domain.KindStamp && progress.DrinksCount >= promo.TicketsRequired

	uc.Metrics.RecordRedemption(token.EstablishmentID, token.Kind, domain.OutcomeSuccess, "", started)
	if isComplete {
		uc.Metrics.RecordCardCompleted(token.EstablishmentID)
	}
	if token.Kind == domain.KindBonus {
		uc.Metrics.RecordBonusGranted(token.EstablishmentID)
	}

	uc.afterSuccess(token, now)
	uc.publishEvent(publisher.ValidationEvent{
		TokenID:         token.ID,
		UserID:          token.UserID,
		EstablishmentID: token.EstablishmentID,
		MerchantID:      input.MerchantID,
		Kind:            string(token.Kind),
		Outcome:         string(domain.OutcomeSuccess),
		DrinksCount:     progress.DrinksCount,
		IsComplete:      isComplete,
		Timestamp:       now,
	})

	return &validationdto.RedeemOutput{
		Outcome:     domain.OutcomeSuccess,
		Kind:        token.Kind,
		DrinksCount: progress.DrinksCount,
		IsComplete:  isComplete,
	}, nil
}

func (uc *DefaultValidationUsecase) decline(token *domain.RedemptionToken, merchantID string, reason domain.DeclineReason, started time.Time) *validationdto.RedeemOutput {
	now := time.Now()

	uc.Audit.Record(&domain.ValidationRecord{
		ID:              uuid.New().String(),
		TokenID:         token.ID,
		UserID:          token.UserID,
		EstablishmentID: token.EstablishmentID,
		MerchantID:      merchantID,
		Kind:            token.Kind,
		Outcome:         domain.OutcomeFailed,
		Reason:          reason,
		Timestamp:       now,
	})

	uc.Metrics.RecordRedemption(token.EstablishmentID, token.Kind, domain.OutcomeFailed, reason, started)

	uc.publishEvent(publisher.ValidationEvent{
		TokenID:         token.ID,
		UserID:          token.UserID,
		EstablishmentID: token.EstablishmentID,
		MerchantID:      merchantID,
		Kind:            string(token.Kind),
		Outcome:         string(domain.OutcomeFailed),
		Reason:          string(reason),
		Timestamp:       now,
	})

	return &validationdto.RedeemOutput{
		Outcome: domain.OutcomeFailed,
		Reason:  reason,
		Kind:    token.Kind,
	}
}

func (uc *DefaultValidationUsecase) afterSuccess(token *domain.RedemptionToken, now time.Time) {
	if uc.Cache == nil {
		return
	}
	if err := uc.Cache.InvalidateProgress(token.UserID, token.EstablishmentID); err != nil {
		slog.Error("progress cache invalidation failed", "user_id", token.UserID, "error", err.Error())
	}
	if err := uc.Cache.IncrementLeaderboard(token.EstablishmentID, token.UserID, now); err != nil {
		slog.Error("leaderboard update failed", "establishment_id", token.EstablishmentID, "error", err.Error())
	}
}

func (uc *DefaultValidationUsecase) publishEvent(event publisher.ValidationEvent) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.ValidationEvent) {
		if err := uc.Publisher.PublishValidation(event); err != nil {
			slog.Error("failed to publish kafka ValidationEvent", "token_id", event.TokenID, "error", err.Error())
		}
	}(event)
}
