package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type fakeStatsStore struct {
	admin domain.AdminStats
	sales []domain.CategorySales
}

func (f *fakeStatsStore) AdminStats(context.Context) (domain.AdminStats, error) {
	return f.admin, nil
}

func (f *fakeStatsStore) OrderStats(context.Context) ([]domain.CategorySales, error) {
	return f.sales, nil
}

func statsRouter(store *fakeStatsStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStatsHandler(service.NewStatsSvc(store))
	r := gin.New()
	r.GET("/admin-stats", h.AdminStats)
	r.GET("/order-stats", h.OrderStats)
	return r
}

func TestAdminStatsPayload(t *testing.T) {
	r := statsRouter(&fakeStatsStore{admin: domain.AdminStats{
		Users: 12, Payments: 7, MenuItems: 30, Revenue: 412.75,
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":12,"payment":7,"menuItem":30,"revenue":412.75}`, w.Body.String())
}

func TestOrderStatsPayload(t *testing.T) {
	r := statsRouter(&fakeStatsStore{sales: []domain.CategorySales{
		{Category: "dessert", Quantity: 4, Revenue: 58},
		{Category: "pizza", Quantity: 9, Revenue: 140.5},
	}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/order-stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"category":"dessert","quantity":4,"revenue":58},
		{"category":"pizza","quantity":9,"revenue":140.5}
	]`, w.Body.String())
}
