package usecase

import (
	"log/slog"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/metrics"
)

// AuditTrail is the append-only writer for validation records. Record never
// fails the caller: a failed write is queued and retried by the background
// flush task, because losing an audit row must not decline a redemption.
type AuditTrail struct {
	repo    domain.ValidationRepository
	metrics *metrics.LoyaltyMetrics
	queue   chan *domain.ValidationRecord
}

func NewAuditTrail(repo domain.ValidationRepository, loyaltyMetrics *metrics.LoyaltyMetrics, queueSize int) *AuditTrail {
	if queueSize <= 0 {
		queueSize = 1024
	}
	return &AuditTrail{
		repo:    repo,
		metrics: loyaltyMetrics,
		queue:   make(chan *domain.ValidationRecord, queueSize),
	}
}

func (a *AuditTrail) Record(record *domain.ValidationRecord) {
	err := a.repo.SaveRecord(record)
	if err == nil {
		return
	}
	slog.Error("audit write failed, queueing for retry", "token_id", record.TokenID, "error", err.Error())
	a.enqueue(record)
}

func (a *AuditTrail) enqueue(record *domain.ValidationRecord) {
	select {
	case a.queue <- record:
		if a.metrics != nil {
			a.metrics.AuditRetriesTotal.Inc()
		}
	default:
		// Queue full. Dropping is the lesser evil: blocking here would
		// stall merchant scans on a storage outage.
		slog.Error("audit retry queue full, dropping record", "token_id", record.TokenID)
		if a.metrics != nil {
			a.metrics.AuditDroppedTotal.Inc()
		}
	}
}

// Flush retries every currently queued record once. Records that fail again
// go back to the queue for the next flush cycle.
func (a *AuditTrail) Flush() {
	pending := len(a.queue)
	for i := 0; i < pending; i++ {
		select {
		case record := <-a.queue:
			if err := a.repo.SaveRecord(record); err != nil {
				slog.Error("audit retry failed", "token_id", record.TokenID, "error", err.Error())
				a.enqueue(record)
			}
		default:
			return
		}
	}
}

// Pending reports the retry backlog size.
func (a *AuditTrail) Pending() int {
	return len(a.queue)
}
