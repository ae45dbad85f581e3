package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem keeps the id of the food it was added from as its own _id, so a
// given (id, email) pair appears at most once in the cart collection.
type CartItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id" binding:"required"`
	Email    string             `bson:"email" json:"email" binding:"required,email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
}
