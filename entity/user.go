package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is created on first sign-in; Role is an open set of strings where
// only "admin" carries special meaning.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email" binding:"required,email"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
