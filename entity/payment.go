package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is a write-once record; ItemID lists the cart entry ids the
// payment covers, in whatever encoding the client held them.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
	ItemID        []string           `bson:"itemId" json:"itemId" binding:"required"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
}
