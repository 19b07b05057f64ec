package service

import (
	"context"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error)
	Insert(ctx context.Context, entry *domain.CartEntry) (domain.InsertResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	DeleteByIDs(ctx context.Context, ids []string) (domain.DeleteResult, error)
}

type CartSvc struct{ repo CartStore }

func NewCartSvc(r CartStore) *CartSvc { return &CartSvc{repo: r} }

func (s *CartSvc) ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *CartSvc) Add(ctx context.Context, entry *domain.CartEntry) (domain.InsertResult, error) {
	return s.repo.Insert(ctx, entry)
}

func (s *CartSvc) Remove(ctx context.Context, id string) (domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
