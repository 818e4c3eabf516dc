package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the lease routes. Only the /lease group is rate limited.
func NewRouter(leaseHandler *LeaseHandler, limiter *RateLimiter, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CorrelationIDMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	lease := router.Group("/lease", RateLimitMiddleware(limiter))
	lease.POST("/calculate", leaseHandler.CalculateLease)
	lease.POST("/compare-tax-methods", leaseHandler.CompareTaxMethods)
	lease.GET("/manufacturers", leaseHandler.ListManufacturers)

	return router
}
