package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskflow/internal/apperr"
	"taskflow/internal/model"
)

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection("tasks")}
}

// Create inserts a new task and returns its id as a hex string.
func (r *TaskRepository) Create(ctx context.Context, t *model.Task) (string, error) {
	defer observe("insert_one", "tasks")()

	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	t.ID = id
	return id.Hex(), nil
}

// ListByProject returns the owner's tasks under a project.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID, owner string) ([]model.Task, error) {
	return r.list(ctx, bson.M{"project_id": projectID, "owner": owner})
}

// ListByProjectAndStatus returns the owner's tasks under a project with a
// given status. The status is validated by the caller.
func (r *TaskRepository) ListByProjectAndStatus(ctx context.Context, projectID, status, owner string) ([]model.Task, error) {
	return r.list(ctx, bson.M{"project_id": projectID, "status": status, "owner": owner})
}

func (r *TaskRepository) list(ctx context.Context, filter bson.M) ([]model.Task, error) {
	defer observe("find", "tasks")()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := make([]model.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update applies a partial $set to the owner's task.
func (r *TaskRepository) Update(ctx context.Context, id, owner string, changes bson.M) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	defer observe("update_one", "tasks")()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid, "owner": owner}, bson.M{"$set": changes})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: task %s", apperr.ErrNotFound, id)
	}
	return nil
}

// Delete removes the owner's task.
func (r *TaskRepository) Delete(ctx context.Context, id, owner string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	defer observe("delete_one", "tasks")()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "owner": owner})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: task %s", apperr.ErrNotFound, id)
	}
	return nil
}

// DeleteByProject removes all of the owner's tasks under a project and
// returns the number deleted. Used by the project delete cascade.
func (r *TaskRepository) DeleteByProject(ctx context.Context, projectID, owner string) (int64, error) {
	defer observe("delete_many", "tasks")()

	res, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID, "owner": owner})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
