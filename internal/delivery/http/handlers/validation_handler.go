package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/dto/request"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/dto/response"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/domain"
	rediscache "github.com/ClaudioLoreto/stappa-loyalty-service/internal/infrastructure/redis"
	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase"
	validationdto "github.com/ClaudioLoreto/stappa-loyalty-service/internal/usecase/dto/validation"
	"github.com/gin-gonic/gin"
)

type ValidationHandler struct {
	uc         usecase.ValidationUsecase
	progressUC usecase.ProgressUsecase
	cache      *rediscache.ProgressCache
}

func NewValidationHandler(uc usecase.ValidationUsecase, progressUC usecase.ProgressUsecase, cache *rediscache.ProgressCache) *ValidationHandler {
	return &ValidationHandler{
		uc:         uc,
		progressUC: progressUC,
		cache:      cache,
	}
}

// Redeem handles POST /api/v1/redemptions. Always 200 with a tagged
// outcome: a declined scan is a normal point-of-sale event.
func (h *ValidationHandler) Redeem(c *gin.Context) {
	var req request.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := h.uc.Redeem(&validationdto.RedeemInput{
		TokenID:         req.TokenID,
		MerchantID:      req.MerchantID,
		EstablishmentID: req.EstablishmentID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, response.RedeemResponse{
		Outcome:     string(output.Outcome),
		Reason:      string(output.Reason),
		Kind:        string(output.Kind),
		DrinksCount: output.DrinksCount,
		IsComplete:  output.IsComplete,
	})
}

// GetProgress handles GET /api/v1/progress?userId=&establishmentId=.
func (h *ValidationHandler) GetProgress(c *gin.Context) {
	userID := c.Query("userId")
	establishmentID := c.Query("establishmentId")
	if userID == "" || establishmentID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "userId and establishmentId are required"})
		return
	}

	output, err := h.progressUC.GetProgress(userID, establishmentID)
	if err != nil {
		if err == domain.ErrNoActivePromo {
			c.JSON(http.StatusUnprocessableEntity, response.ErrorResponse{Error: "NO_ACTIVE_PROMO"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, response.ProgressResponse{
		DrinksCount:     output.DrinksCount,
		TicketsRequired: output.TicketsRequired,
	})
}

// GetValidations handles GET /api/v1/validations filtered by userId or
// establishmentId, newest first.
func (h *ValidationHandler) GetValidations(c *gin.Context) {
	userID := c.Query("userId")
	establishmentID := c.Query("establishmentId")
	if (userID == "") == (establishmentID == "") {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "exactly one of userId or establishmentId is required"})
		return
	}

	filter, err := parseRecordFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var records []*domain.ValidationRecord
	if userID != "" {
		records, err = h.uc.GetValidationsByUser(userID, filter)
	} else {
		records, err = h.uc.GetValidationsByEstablishment(establishmentID, filter)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	result := make([]response.ValidationRecordResponse, len(records))
	for i, record := range records {
		result[i] = response.ValidationRecordResponse{
			ID:              record.ID,
			TokenID:         record.TokenID,
			UserID:          record.UserID,
			EstablishmentID: record.EstablishmentID,
			MerchantID:      record.MerchantID,
			Kind:            string(record.Kind),
			Outcome:         string(record.Outcome),
			Reason:          string(record.Reason),
			DrinksCount:     record.DrinksCount,
			Timestamp:       record.Timestamp,
		}
	}
	c.JSON(http.StatusOK, result)
}

// GetMonthlyCounts handles GET /api/v1/establishments/:id/monthly-counts.
func (h *ValidationHandler) GetMonthlyCounts(c *gin.Context) {
	establishmentID := c.Param("id")

	year := time.Now().Year()
	if rawYear := c.Query("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid year"})
			return
		}
		year = parsed
	}

	counts, err := h.uc.GetMonthlyCounts(establishmentID, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	result := make([]response.MonthlyCountResponse, len(counts))
	for i, count := range counts {
		result[i] = response.MonthlyCountResponse{
			Year:  count.Year,
			Month: int(count.Month),
			Count: count.Count,
		}
	}
	c.JSON(http.StatusOK, result)
}

// GetLeaderboard handles GET /api/v1/establishments/:id/leaderboard. Served
// from the redis sorted set; unavailable without a cache.
func (h *ValidationHandler) GetLeaderboard(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: "leaderboard unavailable"})
		return
	}

	establishmentID := c.Param("id")

	count := 10
	if rawCount := c.Query("count"); rawCount != "" {
		parsed, err := strconv.Atoi(rawCount)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid count"})
			return
		}
		count = parsed
	}

	entries, err := h.cache.TopRedeemers(establishmentID, time.Now(), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
		return
	}

	result := make([]response.LeaderboardEntryResponse, len(entries))
	for i, entry := range entries {
		result[i] = response.LeaderboardEntryResponse{
			UserID: entry.UserID,
			Count:  entry.Count,
		}
	}
	c.JSON(http.StatusOK, result)
}

func parseRecordFilter(c *gin.Context) (domain.RecordFilter, error) {
	var filter domain.RecordFilter

	if rawFrom := c.Query("from"); rawFrom != "" {
		from, err := time.Parse(time.RFC3339, rawFrom)
		if err != nil {
			return filter, err
		}
		filter.From = from
	}
	if rawTo := c.Query("to"); rawTo != "" {
		to, err := time.Parse(time.RFC3339, rawTo)
		if err != nil {
			return filter, err
		}
		filter.To = to
	}
	if rawLimit := c.Query("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}
	return filter, nil
}
