package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type PaymentStore interface {
	Insert(ctx context.Context, p *domain.PaymentRecord) (domain.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]domain.PaymentRecord, error)
}

type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type PaymentSvc struct {
	payments PaymentStore
	carts    CartStore
	intents  IntentCreator
	pub      EventPublisher // nil disables event publishing
}

func NewPaymentSvc(payments PaymentStore, carts CartStore, intents IntentCreator, pub EventPublisher) *PaymentSvc {
	return &PaymentSvc{payments: payments, carts: carts, intents: intents, pub: pub}
}

func (s *PaymentSvc) CreateIntent(ctx context.Context, price float64) (string, error) {
	return s.intents.CreateIntent(ctx, price)
}

// Finalize records the payment, then bulk-deletes the paid cart entries.
// The two writes are independent store calls: when the delete fails the
// payment stays recorded and the cart rows remain. Callers get both
// results so a partial state is observable.
func (s *PaymentSvc) Finalize(ctx context.Context, p *domain.PaymentRecord) (domain.InsertResult, domain.DeleteResult, error) {
	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}

	ins, err := s.payments.Insert(ctx, p)
	if err != nil {
		return domain.InsertResult{}, domain.DeleteResult{}, err
	}

	del, err := s.carts.DeleteByIDs(ctx, p.CartIDs)
	if err != nil {
		return ins, domain.DeleteResult{}, fmt.Errorf("payment %s recorded but cart cleanup failed: %w", ins.InsertedID, err)
	}

	s.publishRecorded(ctx, p, ins.InsertedID)
	return ins, del, nil
}

func (s *PaymentSvc) ListByEmail(ctx context.Context, email string) ([]domain.PaymentRecord, error) {
	return s.payments.ListByEmail(ctx, email)
}

// best effort; a dead broker must not fail the payment
func (s *PaymentSvc) publishRecorded(ctx context.Context, p *domain.PaymentRecord, paymentID string) {
	if s.pub == nil {
		return
	}
	err := s.pub.PublishJSON(ctx, "payment.recorded", map[string]any{
		"payment_id":     paymentID,
		"transaction_id": p.TransactionID,
		"email":          p.Email,
		"price":          p.Price,
		"cart_ids":       p.CartIDs,
		"menu_ids":       p.MenuIDs,
	})
	if err != nil {
		log.Printf("[payment] publish payment.recorded: %v", err)
	}
}
