package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/imalriyad/bistro-boss-server/entity"
)

type CartRepository struct{ Col *mongo.Collection }

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{Col: db.Collection("cart")}
}

// FindByIDAndEmail returns (nil, nil) when no matching entry exists.
func (r *CartRepository) FindByIDAndEmail(ctx context.Context, id primitive.ObjectID, email string) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "email": email}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Insert(ctx context.Context, item *entity.CartItem) (string, error) {
	res, err := r.Col.InsertOne(ctx, item)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// List returns every entry, or only the given email's entries when non-empty.
func (r *CartRepository) List(ctx context.Context, email string) ([]entity.CartItem, error) {
	filter := bson.M{}
	if email != "" {
		filter = bson.M{"email": email}
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var items []entity.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	res, err := r.Col.DeleteOne(ctx, orIDFilter(id))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByItemIDs clears every entry whose _id matches one of ids, under
// either encoding. Used for the post-payment cleanup.
func (r *CartRepository) DeleteByItemIDs(ctx context.Context, ids []string) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, orIDInFilter(ids))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
