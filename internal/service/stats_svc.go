package service

import (
	"context"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type StatsStore interface {
	AdminStats(ctx context.Context) (domain.AdminStats, error)
	OrderStats(ctx context.Context) ([]domain.CategorySales, error)
}

type StatsSvc struct{ repo StatsStore }

func NewStatsSvc(r StatsStore) *StatsSvc { return &StatsSvc{repo: r} }

func (s *StatsSvc) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	return s.repo.AdminStats(ctx)
}

func (s *StatsSvc) OrderStats(ctx context.Context) ([]domain.CategorySales, error) {
	return s.repo.OrderStats(ctx)
}
