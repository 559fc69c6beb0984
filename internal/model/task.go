package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskflow/internal/apperr"
)

const (
	StatusTodo       = "Todo"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// ValidStatus reports whether s is one of the fixed task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	ProjectID   string             `bson:"project_id" json:"project_id"`
	Owner       string             `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewTask builds the stored task document under a project. An empty status
// defaults to Todo.
func NewTask(title, description, status, projectID, owner string) *Task {
	if status == "" {
		status = StatusTodo
	}
	now := time.Now().UTC()
	return &Task{
		Title:       title,
		Description: description,
		Status:      status,
		ProjectID:   projectID,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TaskUpdate carries a partial update. Only non-nil fields overwrite the
// stored document.
type TaskUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (u *TaskUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return fmt.Errorf("%w: title must not be empty", apperr.ErrValidation)
	}
	if u.Status != nil && !ValidStatus(*u.Status) {
		return fmt.Errorf("%w: status must be one of %q, %q, %q",
			apperr.ErrValidation, StatusTodo, StatusInProgress, StatusDone)
	}
	return nil
}

// Changes returns the $set document for the fields present in the update,
// always bumping updated_at.
func (u *TaskUpdate) Changes() bson.M {
	changes := bson.M{"updated_at": time.Now().UTC()}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	return changes
}
