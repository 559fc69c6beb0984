package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// NewUser builds the stored user document. The password must already be
// hashed by the caller.
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
}
