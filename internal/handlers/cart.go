package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type CartHandler struct {
	svc *service.CartSvc
}

func NewCartHandler(svc *service.CartSvc) *CartHandler {
	return &CartHandler{svc: svc}
}

// GET /carts?email= — filters on the query email only; ownership is
// not verified against the caller.
func (h *CartHandler) List(c *gin.Context) {
	entries, err := h.svc.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// POST /cart, POST /carts
func (h *CartHandler) Create(c *gin.Context) {
	var entry domain.CartEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Add(c.Request.Context(), &entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /mycart/:id
func (h *CartHandler) Delete(c *gin.Context) {
	res, err := h.svc.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
