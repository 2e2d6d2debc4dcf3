package usecase

import (
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	publisher "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/kafka"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/metrics"
	rediscache "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/redis"
	validationdto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/validation"
)

type ValidationUsecase interface {
	Redeem(input *validationdto.RedeemInput) (*validationdto.RedeemOutput, error)

	GetValidationsByUser(userID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error)
	GetValidationsByEstablishment(establishmentID string, filter domain.RecordFilter) ([]*domain.ValidationRecord, error)
	GetMonthlyCounts(establishmentID string, year int) ([]*domain.MonthlyValidationCount, error)
}

type DefaultValidationUsecase struct {
	TokenRepo      domain.TokenRepository
	PromoRepo      domain.PromoRepository
	Processor      domain.RedemptionProcessor
	ValidationRepo domain.ValidationRepository
	Audit          *AuditTrail
	Publisher      *publisher.ValidationPublisher
	Cache          *rediscache.ProgressCache
	Metrics        *metrics.LoyaltyMetrics
}

func NewDefaultValidationUsecase(
	tokenRepo domain.TokenRepository,
	promoRepo domain.PromoRepository,
	processor domain.RedemptionProcessor,
	validationRepo domain.ValidationRepository,
	audit *AuditTrail,
	validationPublisher *publisher.ValidationPublisher,
	cache *rediscache.ProgressCache,
	loyaltyMetrics *metrics.LoyaltyMetrics) *DefaultValidationUsecase {

	return &DefaultValidationUsecase{
		TokenRepo:      tokenRepo,
		PromoRepo:      promoRepo,
		Processor:      processor,
		ValidationRepo: validationRepo,
		Audit:          audit,
		Publisher:      validationPublisher,
		Cache:          cache,
		Metrics:        loyaltyMetrics,
	}
}
