package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentSvc
}

func NewPaymentHandler(svc *service.PaymentSvc) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var in struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	secret, err := h.svc.CreateIntent(c.Request.Context(), in.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// POST /payments — insert the record, then clear the paid cart entries.
// Both results are returned; a cart-cleanup failure after a successful
// insert is a 500 with the payment already retained.
func (h *PaymentHandler) Record(c *gin.Context) {
	var p domain.PaymentRecord
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ins, del, err := h.svc.Finalize(c.Request.Context(), &p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "paymentResult": ins})
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentResult": ins, "deleteResult": del})
}

// GET /payments/:email — callers may only list their own payments.
func (h *PaymentHandler) ListByEmail(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	payments, err := h.svc.ListByEmail(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}
