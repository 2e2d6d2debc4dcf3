package handlers

import (
	"errors"
	"net/http"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/dto/request"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/dto/response"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase"
	tokendto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/token"
	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	uc usecase.TokenUsecase
}

func NewTokenHandler(uc usecase.TokenUsecase) *TokenHandler {
	return &TokenHandler{uc: uc}
}

// IssueToken handles POST /api/v1/tokens. Precondition failures are 422
// with a machine-readable reason so the app can render the right message.
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req request.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := h.uc.IssueToken(&tokendto.IssueTokenInput{
		UserID:          req.UserID,
		EstablishmentID: req.EstablishmentID,
		Kind:            domain.TokenKind(req.Kind),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoActivePromo):
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: "NO_ACTIVE_PROMO"})
		case errors.Is(err, domain.ErrCardAlreadyComplete):
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: "CARD_ALREADY_COMPLETE"})
		case errors.Is(err, domain.ErrCardNotComplete):
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: "CARD_NOT_COMPLETE"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, response.IssueTokenResponse{
		TokenID:   output.TokenID,
		Kind:      string(output.Kind),
		ExpiresAt: output.ExpiresAt,
	})
}
