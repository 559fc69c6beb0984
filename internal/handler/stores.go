package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"taskflow/internal/model"
)

// ProjectStore is the persistence surface the project handlers need.
type ProjectStore interface {
	Create(ctx context.Context, p *model.Project) (string, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Project, error)
	FindByID(ctx context.Context, id, owner string) (*model.Project, error)
	Update(ctx context.Context, id, owner string, changes bson.M) error
	Delete(ctx context.Context, id, owner string) error
}

// TaskStore is the persistence surface the task handlers need.
type TaskStore interface {
	Create(ctx context.Context, t *model.Task) (string, error)
	ListByProject(ctx context.Context, projectID, owner string) ([]model.Task, error)
	ListByProjectAndStatus(ctx context.Context, projectID, status, owner string) ([]model.Task, error)
	Update(ctx context.Context, id, owner string, changes bson.M) error
	Delete(ctx context.Context, id, owner string) error
	DeleteByProject(ctx context.Context, projectID, owner string) (int64, error)
}
