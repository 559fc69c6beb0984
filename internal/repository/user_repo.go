package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskflow/internal/apperr"
	"taskflow/internal/model"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// Create inserts a new user document.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	defer observe("insert_one", "users")()

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return nil
}

// FindByEmail returns the user registered under email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	defer observe("find_one", "users")()

	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, email)
		}
		return nil, err
	}
	return &u, nil
}
