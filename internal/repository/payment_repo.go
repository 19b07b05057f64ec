package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

type PaymentRepo struct{ col *mongo.Collection }

func NewPaymentRepo(col *mongo.Collection) *PaymentRepo {
	return &PaymentRepo{col: col}
}

func (r *PaymentRepo) Insert(ctx context.Context, p *domain.PaymentRecord) (domain.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return domain.InsertResult{}, err
	}
	return insertResult(res), nil
}

func (r *PaymentRepo) ListByEmail(ctx context.Context, email string) ([]domain.PaymentRecord, error) {
	cur, err := r.col.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, err
	}
	var out []domain.PaymentRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
