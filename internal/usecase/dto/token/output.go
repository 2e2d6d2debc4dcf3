package tokendto

import (
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
)

type IssueTokenOutput struct {
	TokenID   string
	Kind      domain.TokenKind
	ExpiresAt time.Time
}
