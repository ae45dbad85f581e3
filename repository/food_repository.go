package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imalriyad/bistro-boss-server/entity"
)

type FoodRepository struct{ Col *mongo.Collection }

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{Col: db.Collection("foods")}
}

func (r *FoodRepository) Insert(ctx context.Context, f *entity.Food) (string, error) {
	res, err := r.Col.InsertOne(ctx, f)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

func (r *FoodRepository) List(ctx context.Context) ([]entity.Food, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var foods []entity.Food
	if err := cur.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := r.Col.DeleteOne(ctx, orIDFilter(id))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
