package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type MenuHandler struct {
	svc *service.MenuSvc
}

func NewMenuHandler(svc *service.MenuSvc) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// GET /menu
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GET /menu/:id — a missing item yields a null body, not a 404.
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// POST /menu (admin)
func (h *MenuHandler) Create(c *gin.Context) {
	var item domain.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Create(c.Request.Context(), &item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// PATCH /menu/:id (admin) — full replacement of the editable fields.
func (h *MenuHandler) Update(c *gin.Context) {
	var item domain.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Update(c.Request.Context(), c.Param("id"), &item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /menu/:id (admin)
func (h *MenuHandler) Delete(c *gin.Context) {
	res, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
