package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type CartRepo struct{ col *mongo.Collection }

func NewCartRepo(col *mongo.Collection) *CartRepo {
	return &CartRepo{col: col}
}

// ListByEmail filters on the entry's email field only; the caller's
// identity is not checked against it.
func (r *CartRepo) ListByEmail(ctx context.Context, email string) ([]domain.CartEntry, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	var out []domain.CartEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CartRepo) Insert(ctx context.Context, entry *domain.CartEntry) (domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, entry)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *CartRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// DeleteByIDs bulk-deletes the entries named in a payment's cartIds.
func (r *CartRepo) DeleteByIDs(ctx context.Context, ids []string) (domain.DeleteResult, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return domain.DeleteResult{}, fmt.Errorf("cart id %q: %w", id, err)
		}
		oids = append(oids, oid)
	}
	res, err := r.col.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
