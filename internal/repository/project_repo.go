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

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection("projects")}
}

// Create inserts a new project and returns its id as a hex string.
func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) (string, error) {
	defer observe("insert_one", "projects")()

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	p.ID = id
	return id.Hex(), nil
}

// ListByOwner returns every project owned by owner.
func (r *ProjectRepository) ListByOwner(ctx context.Context, owner string) ([]model.Project, error) {
	defer observe("find", "projects")()

	cursor, err := r.col.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	projects := make([]model.Project, 0)
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID returns the project only when it exists and belongs to owner.
func (r *ProjectRepository) FindByID(ctx context.Context, id, owner string) (*model.Project, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	defer observe("find_one", "projects")()

	var p model.Project
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "owner": owner}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return &p, nil
}

// Update applies a partial $set to the owner's project.
func (r *ProjectRepository) Update(ctx context.Context, id, owner string, changes bson.M) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	defer observe("update_one", "projects")()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid, "owner": owner}, bson.M{"$set": changes})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
	}
	return nil
}

// Delete removes the owner's project. Cascading task deletion is the
// caller's responsibility.
func (r *ProjectRepository) Delete(ctx context.Context, id, owner string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	defer observe("delete_one", "projects")()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
	}
	return nil
}
