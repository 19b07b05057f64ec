package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type ReviewHandler struct {
	svc *service.ReviewSvc
}

func NewReviewHandler(svc *service.ReviewSvc) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// GET /reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
