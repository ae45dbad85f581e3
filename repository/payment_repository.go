package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imalriyad/bistro-boss-server/entity"
)

type PaymentRepository struct{ Col *mongo.Collection }

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{Col: db.Collection("payment")}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *entity.Payment) (string, error) {
	res, err := r.Col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}
