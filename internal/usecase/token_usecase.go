package usecase

import (
	"fmt"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/metrics"
	tokendto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/token"
	"github.com/jaevor/go-nanoid"
)

// 24 chars over the 64-symbol standard alphabet gives ~144 bits of
// entropy; token ids must stay unguessable.
const tokenIDLength = 24

type TokenUsecase interface {
	IssueToken(input *tokendto.IssueTokenInput) (*tokendto.IssueTokenOutput, error)
	GetTokenByID(tokenID string) (*domain.RedemptionToken, error)
}

type DefaultTokenUsecase struct {
	TokenRepo    domain.TokenRepository
	PromoRepo    domain.PromoRepository
	ProgressRepo domain.ProgressRepository
	Metrics      *metrics.LoyaltyMetrics
	TokenTTL     time.Duration

	newTokenID func() string
}

func NewDefaultTokenUsecase(
	tokenRepo domain.TokenRepository,
	promoRepo domain.PromoRepository,
	progressRepo domain.ProgressRepository,
	loyaltyMetrics *metrics.LoyaltyMetrics,
	tokenTTL time.Duration) *DefaultTokenUsecase {

	gen, err := nanoid.Standard(tokenIDLength)
	if err != nil {
		panic(fmt.Sprintf("token id generator: %v", err))
	}

	return &DefaultTokenUsecase{
		TokenRepo:    tokenRepo,
		PromoRepo:    promoRepo,
		ProgressRepo: progressRepo,
		Metrics:      loyaltyMetrics,
		TokenTTL:     tokenTTL,
		newTokenID:   gen,
	}
}

// IssueToken gates the token on the establishment's active promo and the
// user's current card state, then persists a fresh unconsumed token.
// Issuing a new STAMP token deliberately leaves prior unconsumed ones
// alive; the ledger's saturating increment bounds any double-counting.
func (uc *DefaultTokenUsecase) IssueToken(input *tokendto.IssueTokenInput) (*tokendto.IssueTokenOutput, error) {
	now := time.Now()

	promo, err := uc.PromoRepo.GetActivePromo(input.EstablishmentID)
	if err != nil {
		uc.Metrics.RecordIssueRejected(input.EstablishmentID, "no_active_promo")
		return nil, domain.ErrNoActivePromo
	}
	if !promo.IsValid(now) {
		uc.Metrics.RecordIssueRejected(input.EstablishmentID, "no_active_promo")
		return nil, domain.ErrNoActivePromo
	}

	progress, err := uc.ProgressRepo.GetOrCreateProgress(input.UserID, input.EstablishmentID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}

	switch input.Kind {
	case domain.KindStamp:
		if progress.DrinksCount >= promo.TicketsRequired {
			uc.Metrics.RecordIssueRejected(input.EstablishmentID, "card_already_complete")
			return nil, domain.ErrCardAlreadyComplete
		}
	case domain.KindBonus:
		if progress.DrinksCount < promo.TicketsRequired {
			uc.Metrics.RecordIssueRejected(input.EstablishmentID, "card_not_complete")
			return nil, domain.ErrCardNotComplete
		}
	default:
		return nil, fmt.Errorf("unknown token kind %q", input.Kind)
	}

	token := &domain.RedemptionToken{
		ID:              uc.newTokenID(),
		UserID:          input.UserID,
		EstablishmentID: input.EstablishmentID,
		Kind:            input.Kind,
		IssuedAt:        now,
		ExpiresAt:       now.Add(uc.TokenTTL),
	}
	if err := uc.TokenRepo.CreateToken(token); err != nil {
		return nil, fmt.Errorf("persisting token: %w", err)
	}

	uc.Metrics.RecordIssued(input.EstablishmentID, input.Kind)

	return &tokendto.IssueTokenOutput{
		TokenID:   token.ID,
		Kind:      token.Kind,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func (uc *DefaultTokenUsecase) GetTokenByID(tokenID string) (*domain.RedemptionToken, error) {
	return uc.TokenRepo.GetTokenByID(tokenID)
}
