package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/havncube/billing-service/internal/logger"
	"github.com/havncube/billing-service/internal/usecase"
)

// HealthHandler answers the root and health probes. The database field
// reflects a live DescribeTable against the store, not just configuration.

type HealthHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewHealthHandler(uc usecase.IEstimateUseCase) *HealthHandler {
	return &HealthHandler{usecase: uc}
}

// Root godoc
// @Summary  Service banner
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Havn Cube Billing & Estimation API"})
}

// Health godoc
// @Summary  Health check
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	database := "connected"
	if err := h.usecase.Ping(c.Request.Context()); err != nil {
		logger.Get(c.Request.Context()).Warn().Err(err).Msg("health ping failed")
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": database,
	})
}
