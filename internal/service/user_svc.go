package service

import (
	"context"
	"strings"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (domain.InsertResult, error)
	PromoteAdmin(ctx context.Context, id string) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type UserSvc struct{ repo UserStore }

func NewUserSvc(r UserStore) *UserSvc { return &UserSvc{repo: r} }

func (s *UserSvc) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether a stored user carries the admin role. A
// missing user is simply not an admin, not an error.
func (s *UserSvc) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.ByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return false, err
	}
	return u != nil && u.Role == domain.RoleAdmin, nil
}

// CreateIfAbsent makes user creation idempotent per email: when the
// email already exists the insert is skipped and existed is true. The
// check-then-insert pair is not atomic (no unique index on email).
func (s *UserSvc) CreateIfAbsent(ctx context.Context, u *domain.User) (domain.InsertResult, bool, error) {
	u.Email = strings.ToLower(u.Email)
	existing, err := s.repo.ByEmail(ctx, u.Email)
	if err != nil {
		return domain.InsertResult{}, false, err
	}
	if existing != nil {
		return domain.InsertResult{}, true, nil
	}
	res, err := s.repo.Create(ctx, u)
	return res, false, err
}

func (s *UserSvc) Promote(ctx context.Context, id string) (domain.UpdateResult, error) {
	return s.repo.PromoteAdmin(ctx, id)
}

func (s *UserSvc) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
