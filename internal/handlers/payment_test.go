package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
	"github.com/nahidraz23/bistro-bliss-server/internal/middlewares"
	"github.com/nahidraz23/bistro-bliss-server/internal/service"
)

type fakePaymentStore struct {
	records []*domain.PaymentRecord
}

func (f *fakePaymentStore) Insert(_ context.Context, p *domain.PaymentRecord) (domain.InsertResult, error) {
	f.records = append(f.records, p)
	return domain.InsertResult{InsertedID: "66b000000000000000000001"}, nil
}

func (f *fakePaymentStore) ListByEmail(_ context.Context, email string) ([]domain.PaymentRecord, error) {
	var out []domain.PaymentRecord
	for _, p := range f.records {
		if p.Email == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeCartStore struct {
	deletedIDs []string
}

func (f *fakeCartStore) ListByEmail(context.Context, string) ([]domain.CartEntry, error) {
	return nil, nil
}
func (f *fakeCartStore) Insert(context.Context, *domain.CartEntry) (domain.InsertResult, error) {
	return domain.InsertResult{}, nil
}
func (f *fakeCartStore) Delete(context.Context, string) (domain.DeleteResult, error) {
	return domain.DeleteResult{}, nil
}
func (f *fakeCartStore) DeleteByIDs(_ context.Context, ids []string) (domain.DeleteResult, error) {
	f.deletedIDs = ids
	return domain.DeleteResult{DeletedCount: int64(len(ids))}, nil
}

type fakeIntents struct {
	gotPrice float64
}

func (f *fakeIntents) CreateIntent(_ context.Context, price float64) (string, error) {
	f.gotPrice = price
	return "src_test_abc", nil
}

func paymentRouter(payments *fakePaymentStore, carts *fakeCartStore, intents *fakeIntents) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewPaymentSvc(payments, carts, intents, nil)
	h := NewPaymentHandler(svc)
	r := gin.New()
	r.POST("/create-payment-intent", h.CreateIntent)
	r.POST("/payments", h.Record)
	r.GET("/payments/:email", middlewares.JWTAuth(testSecret), h.ListByEmail)
	return r
}

func TestCreatePaymentIntent(t *testing.T) {
	intents := &fakeIntents{}
	r := paymentRouter(&fakePaymentStore{}, &fakeCartStore{}, intents)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":20}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"clientSecret":"src_test_abc"}`, w.Body.String())
	assert.Equal(t, 20.0, intents.gotPrice)
}

func TestCreatePaymentIntentMissingPrice(t *testing.T) {
	r := paymentRouter(&fakePaymentStore{}, &fakeCartStore{}, &fakeIntents{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordPaymentClearsCart(t *testing.T) {
	payments := &fakePaymentStore{}
	carts := &fakeCartStore{}
	r := paymentRouter(payments, carts, &fakeIntents{})

	body := `{
		"email": "alice@example.com",
		"price": 42.5,
		"cartIds": ["66c000000000000000000001", "66c000000000000000000002"],
		"menuIds": ["66d000000000000000000001"]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PaymentResult domain.InsertResult `json:"paymentResult"`
		DeleteResult  domain.DeleteResult `json:"deleteResult"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "66b000000000000000000001", resp.PaymentResult.InsertedID)
	assert.Equal(t, int64(2), resp.DeleteResult.DeletedCount)
	assert.Equal(t, []string{"66c000000000000000000001", "66c000000000000000000002"}, carts.deletedIDs)
}

func TestListPaymentsSelfOnly(t *testing.T) {
	payments := &fakePaymentStore{records: []*domain.PaymentRecord{
		{Email: "alice@example.com", Price: 10},
	}}
	r := paymentRouter(payments, &fakeCartStore{}, &fakeIntents{})

	// someone else's history is off limits
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
	req.Header.Set("Authorization", token(t, "mallory@example.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// own history works
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/payments/alice@example.com", nil)
	req.Header.Set("Authorization", token(t, "alice@example.com"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var out []domain.PaymentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, 10.0, out[0].Price)
}
