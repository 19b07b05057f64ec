package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

// ReviewRepo is read-only; the write path for reviews does not exist in
// this system.
type ReviewRepo struct{ col *mongo.Collection }

func NewReviewRepo(col *mongo.Collection) *ReviewRepo {
	return &ReviewRepo{col: col}
}

func (r *ReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var out []domain.Review
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
