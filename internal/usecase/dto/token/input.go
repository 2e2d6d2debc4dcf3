package tokendto

import "github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"

type IssueTokenInput struct {
	UserID          string
	EstablishmentID string
	Kind            domain.TokenKind
}
