package handlers

import (
	"errors"
	"net/http"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/dto/request"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/dto/response"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase"
	promodto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/promo"
	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	uc usecase.PromoUsecase
}

func NewPromoHandler(uc usecase.PromoUsecase) *PromoHandler {
	return &PromoHandler{uc: uc}
}

// CreatePromo handles POST /api/v1/promos — the privileged merchant action
// that (re)configures an establishment's loyalty card.
func (h *PromoHandler) CreatePromo(c *gin.Context) {
	var req request.CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	promo, err := h.uc.CreatePromo(&promodto.CreatePromoInput{
		EstablishmentID: req.EstablishmentID,
		TicketsRequired: req.TicketsRequired,
		TicketCost:      req.TicketCost,
		RewardValue:     req.RewardValue,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTicketsRequired), errors.Is(err, usecase.ErrInvalidPromoWindow):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toPromoResponse(promo))
}

func (h *PromoHandler) DeactivatePromo(c *gin.Context) {
	promoID := c.Param("id")
	if err := h.uc.DeactivatePromo(promoID); err != nil {
		if errors.Is(err, domain.ErrPromoNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "promo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PromoHandler) GetActivePromo(c *gin.Context) {
	establishmentID := c.Param("id")
	promo, err := h.uc.GetActivePromo(establishmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActivePromo) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "NO_ACTIVE_PROMO"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, toPromoResponse(promo))
}

func toPromoResponse(promo *domain.Promo) response.PromoResponse {
	return response.PromoResponse{
		ID:              promo.ID,
		EstablishmentID: promo.EstablishmentID,
		TicketsRequired: promo.TicketsRequired,
		TicketCost:      promo.TicketCost,
		RewardValue:     promo.RewardValue,
		StartDate:       promo.StartDate,
		EndDate:         promo.EndDate,
		IsActive:        promo.IsActive,
	}
}
