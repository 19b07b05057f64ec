package service

import (
	"context"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type ReviewStore interface {
	List(ctx context.Context) ([]domain.Review, error)
}

type ReviewSvc struct{ repo ReviewStore }

func NewReviewSvc(r ReviewStore) *ReviewSvc { return &ReviewSvc{repo: r} }

func (s *ReviewSvc) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}
