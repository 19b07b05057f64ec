package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type StatsHandler struct {
	svc *service.StatsSvc
}

func NewStatsHandler(svc *service.StatsSvc) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// GET /admin-stats (admin)
func (h *StatsHandler) AdminStats(c *gin.Context) {
	stats, err := h.svc.AdminStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /order-stats (admin)
func (h *StatsHandler) OrderStats(c *gin.Context) {
	stats, err := h.svc.OrderStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
