package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type MenuRepo struct{ col *mongo.Collection }

func NewMenuRepo(col *mongo.Collection) *MenuRepo {
	return &MenuRepo{col: col}
}

func (r *MenuRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var out []domain.MenuItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ByID returns (nil, nil) when the item does not exist.
func (r *MenuRepo) ByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var m domain.MenuItem
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepo) Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return insertResult(res), nil
}

// Replace sets the full field set; a PATCH here is a whole-item update.
func (r *MenuRepo) Replace(ctx context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := r.col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: item.Name},
			{Key: "category", Value: item.Category},
			{Key: "price", Value: item.Price},
			{Key: "image", Value: item.Image},
			{Key: "recipe", Value: item.Recipe},
		}}},
	)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MenuRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
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
