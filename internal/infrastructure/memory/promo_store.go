package memory

import (
	"sync"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
)

type PromoStore struct {
	mu     sync.Mutex
	promos map[string]*domain.Promo
}

func NewPromoStore() *PromoStore {
	return &PromoStore{promos: make(map[string]*domain.Promo)}
}

func (s *PromoStore) CreatePromo(promo *domain.Promo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if promo.IsActive {
		for _, existing := range s.promos {
			if existing.EstablishmentID == promo.EstablishmentID && existing.IsActive {
				existing.IsActive = false
				existing.UpdatedAt = time.Now()
			}
		}
	}

	copied := *promo
	now := time.Now()
	copied.CreatedAt = now
	copied.UpdatedAt = now
	s.promos[promo.ID] = &copied
	return nil
}

func (s *PromoStore) DeactivatePromo(promoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.promos[promoID]
	if !ok {
		return domain.ErrPromoNotFound
	}
	promo.IsActive = false
	promo.UpdatedAt = time.Now()
	return nil
}

func (s *PromoStore) GetPromoByID(promoID string) (*domain.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.promos[promoID]
	if !ok {
		return nil, domain.ErrPromoNotFound
	}
	copied := *promo
	return &copied, nil
}

func (s *PromoStore) GetActivePromo(establishmentID string) (*domain.Promo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *domain.Promo
	for _, promo := range s.promos {
		if promo.EstablishmentID != establishmentID || !promo.IsActive {
			continue
		}
		if latest == nil || promo.CreatedAt.After(latest.CreatedAt) {
			latest = promo
		}
	}
	if latest == nil {
		return nil, domain.ErrNoActivePromo
	}
	copied := *latest
	return &copied, nil
}
