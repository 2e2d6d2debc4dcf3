package memory

import (
	"sync"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
)

// TokenStore is a mutex-protected map implementation of
// domain.TokenRepository. The single mutex is the serialization point that
// makes ConsumeToken exactly-once within a process.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]*domain.RedemptionToken
}

func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]*domain.RedemptionToken)}
}

func (s *TokenStore) CreateToken(token *domain.RedemptionToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *token
	s.tokens[token.ID] = &copied
	return nil
}

func (s *TokenStore) GetTokenByID(tokenID string) (*domain.RedemptionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	copied := *token
	return &copied, nil
}

func (s *TokenStore) ConsumeToken(tokenID string, now time.Time) (*domain.RedemptionToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return nil, domain.ErrTokenNotFound
	}
	if token.Consumed {
		return nil, domain.ErrTokenAlreadyConsumed
	}
	if token.Expired(now) {
		return nil, domain.ErrTokenExpired
	}

	token.Consumed = true
	consumedAt := now
	token.ConsumedAt = &consumedAt

	copied := *token
	return &copied, nil
}

func (s *TokenStore) DeleteExpiredTokens(before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, token := range s.tokens {
		if token.ExpiresAt.Before(before) {
			delete(s.tokens, id)
			deleted++
		}
	}
	return deleted, nil
}
