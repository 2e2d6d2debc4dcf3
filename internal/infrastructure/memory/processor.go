package memory

import (
	"fmt"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/google/uuid"
)

// RedemptionProcessor chains the three memory stores. The consume CAS is
// the serialization point; the later steps cannot fail except on a broken
// ledger invariant, so no compensating write is needed.
type RedemptionProcessor struct {
	Tokens      *TokenStore
	Progress    *ProgressStore
	Validations *ValidationStore
}

func NewRedemptionProcessor(tokens *TokenStore, progress *ProgressStore, validations *ValidationStore) *RedemptionProcessor {
	return &RedemptionProcessor{
		Tokens:      tokens,
		Progress:    progress,
		Validations: validations,
	}
}

func (p *RedemptionProcessor) ProcessRedemption(
	token *domain.RedemptionToken,
	merchantID string,
	threshold int32,
	now time.Time,
) (*domain.UserProgress, error) {
	consumed, err := p.Tokens.ConsumeToken(token.ID, now)
	if err != nil {
		return nil, err
	}

	var progress *domain.UserProgress
	switch consumed.Kind {
	case domain.KindStamp:
		progress, err = p.Progress.IncrementIfBelow(token.UserID, token.EstablishmentID, threshold)
	case domain.KindBonus:
		progress, err = p.Progress.ResetProgress(token.UserID, token.EstablishmentID)
	default:
		err = fmt.Errorf("unknown token kind %q", consumed.Kind)
	}
	if err != nil {
		return nil, err
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
	if err := p.Validations.SaveRecord(record); err != nil {
		return nil, err
	}

	return progress, nil
}
