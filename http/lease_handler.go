package http

import (
	"errors"
	"net/http"

	"lease-calculator/domain"
	"lease-calculator/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

type LeaseHandler struct {
	service *service.LeaseService
	logger  *zap.Logger
}

func NewLeaseHandler(service *service.LeaseService, logger *zap.Logger) *LeaseHandler {
	return &LeaseHandler{service: service, logger: logger}
}

// CalculateLease handles POST /lease/calculate.
func (h *LeaseHandler) CalculateLease(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	result, err := h.service.CalculateLease(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompareTaxMethods handles POST /lease/compare-tax-methods.
func (h *LeaseHandler) CompareTaxMethods(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	result, err := h.service.CompareTaxMethods(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListManufacturers handles GET /lease/manufacturers.
func (h *LeaseHandler) ListManufacturers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"manufacturers": h.service.Manufacturers()})
}

func (h *LeaseHandler) bindInput(c *gin.Context) (domain.LeaseInput, bool) {
	var input domain.LeaseInput

	if c.ContentType() != "application/json" {
		c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{Error: "Content-Type must be application/json"})
		return input, false
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Debug("Error decoding request body",
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return input, false
	}
	return input, true
}

func (h *LeaseHandler) writeError(c *gin.Context, err error) {
	if domain.IsInvalidInput(err) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if errors.Is(err, domain.ErrNonFiniteResult) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		return
	}

	h.logger.Error("Lease calculation failed",
		zap.String("correlation_id", GetCorrelationID(c)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
