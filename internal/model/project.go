package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskflow/internal/apperr"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Owner       string             `bson:"owner" json:"owner"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewProject builds the stored project document for the given owner.
func NewProject(title, description, owner string) *Project {
	now := time.Now().UTC()
	return &Project{
		Title:       title,
		Description: description,
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ProjectUpdate carries a partial update. Only non-nil fields overwrite the
// stored document.
type ProjectUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (u *ProjectUpdate) Validate() error {
	if u.Title != nil {
		if n := len(*u.Title); n < 1 || n > maxTitleLen {
			return fmt.Errorf("%w: title must be 1-%d characters", apperr.ErrValidation, maxTitleLen)
		}
	}
	if u.Description != nil && len(*u.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", apperr.ErrValidation, maxDescriptionLen)
	}
	return nil
}

// Changes returns the $set document for the fields present in the update,
// always bumping updated_at.
func (u *ProjectUpdate) Changes() bson.M {
	changes := bson.M{"updated_at": time.Now().UTC()}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	return changes
}
