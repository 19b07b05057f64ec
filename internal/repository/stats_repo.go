package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nahidraz23/bistro-bliss-server/internal/domain"
)

// StatsRepo owns the read-only analytics queries. It spans three
// collections, so it holds handles instead of reusing the CRUD repos.
type StatsRepo struct {
	users    *mongo.Collection
	menu     *mongo.Collection
	payments *mongo.Collection
}

func NewStatsRepo(users, menu, payments *mongo.Collection) *StatsRepo {
	return &StatsRepo{users: users, menu: menu, payments: payments}
}

// AdminStats runs four independent queries; the numbers are not a
// consistent snapshot.
func (r *StatsRepo) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	var s domain.AdminStats
	var err error

	if s.Users, err = r.users.EstimatedDocumentCount(ctx); err != nil {
		return domain.AdminStats{}, err
	}
	if s.MenuItems, err = r.menu.EstimatedDocumentCount(ctx); err != nil {
		return domain.AdminStats{}, err
	}
	if s.Payments, err = r.payments.EstimatedDocumentCount(ctx); err != nil {
		return domain.AdminStats{}, err
	}

	cur, err := r.payments.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	})
	if err != nil {
		return domain.AdminStats{}, err
	}
	var agg []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &agg); err != nil {
		return domain.AdminStats{}, err
	}
	if len(agg) > 0 {
		s.Revenue = agg[0].TotalRevenue
	}
	return s, nil
}

// OrderStats unwinds each payment's menu ids, joins them back to the
// menu collection and groups by category. Payments referencing menu ids
// that no longer exist drop out at the inner $unwind after the join.
func (r *StatsRepo) OrderStats(ctx context.Context) ([]domain.CategorySales, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menuIds"}},
		// menuIds are stored as hex strings; the join needs ObjectIDs
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "menuObjectId", Value: bson.D{{Key: "$toObjectId", Value: "$menuIds"}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "foodItems"},
			{Key: "localField", Value: "menuObjectId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItems"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
	}
	cur, err := r.payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var out []domain.CategorySales
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
