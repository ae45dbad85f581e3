package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imalriyad/bistro-boss-server/entity"
)

type ReviewRepository struct{ Col *mongo.Collection }

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{Col: db.Collection("reviews")}
}

func (r *ReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var reviews []entity.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
