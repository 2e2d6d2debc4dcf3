package background

import (
	"context"
	"log"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/metrics"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase"
)

type BackgroundTasks struct {
	TokenRepo     domain.TokenRepository
	Audit         *usecase.AuditTrail
	Metrics       *metrics.LoyaltyMetrics
	SweepInterval time.Duration
}

func NewBackgroundTasks(tokenRepo domain.TokenRepository, audit *usecase.AuditTrail, loyaltyMetrics *metrics.LoyaltyMetrics, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &BackgroundTasks{
		TokenRepo:     tokenRepo,
		Audit:         audit,
		Metrics:       loyaltyMetrics,
		SweepInterval: sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startTokenSweep(ctx)
	go bt.startAuditFlush(ctx)
}

// startTokenSweep reclaims storage for expired tokens. Correctness never
// depends on it: consumption re-checks expiry on its own.
func (bt *BackgroundTasks) startTokenSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := bt.TokenRepo.DeleteExpiredTokens(time.Now())
			if err != nil {
				log.Printf("Token sweep error: %v\n", err)
				continue
			}
			if deleted > 0 {
				bt.Metrics.RecordSweep(deleted)
				log.Printf("Token sweep removed %d expired tokens\n", deleted)
			}
		}
	}
}

func (bt *BackgroundTasks) startAuditFlush(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.Audit.Flush()
		}
	}
}
