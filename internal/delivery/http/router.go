package http

import (
	"net/http"

	"github.com/ClaudioLoreto/stappa-loyalty-service/internal/delivery/http/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	tokenHandler *handlers.TokenHandler,
	validationHandler *handlers.ValidationHandler,
	promoHandler *handlers.PromoHandler) *gin.Engine {

	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/tokens", tokenHandler.IssueToken)
		v1.POST("/redemptions", validationHandler.Redeem)
		v1.GET("/progress", validationHandler.GetProgress)
		v1.GET("/validations", validationHandler.GetValidations)
		v1.GET("/establishments/:id/monthly-counts", validationHandler.GetMonthlyCounts)
		v1.GET("/establishments/:id/leaderboard", validationHandler.GetLeaderboard)
		v1.GET("/establishments/:id/promo", promoHandler.GetActivePromo)
		v1.POST("/promos", promoHandler.CreatePromo)
		v1.POST("/promos/:id/deactivate", promoHandler.DeactivatePromo)
	}

	return router
}
