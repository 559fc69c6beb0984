// Package repository provides owner-scoped access to the MongoDB
// collections backing users, projects, and tasks.
package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskflow/internal/apperr"
	"taskflow/pkg/metrics"
)

func observe(operation, collection string) func() {
	start := time.Now()
	return func() {
		metrics.RecordDBQuery(operation, collection, time.Since(start))
	}
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", apperr.ErrValidation, id)
	}
	return oid, nil
}
