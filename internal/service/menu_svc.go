package service

import (
	"context"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type MenuStore interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	ByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error)
	Replace(ctx context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type MenuSvc struct{ repo MenuStore }

func NewMenuSvc(r MenuStore) *MenuSvc { return &MenuSvc{repo: r} }

func (s *MenuSvc) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

func (s *MenuSvc) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.ByID(ctx, id)
}

func (s *MenuSvc) Create(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	return s.repo.Insert(ctx, item)
}

func (s *MenuSvc) Update(ctx context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error) {
	return s.repo.Replace(ctx, id, item)
}

func (s *MenuSvc) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
