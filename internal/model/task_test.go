package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/apperr"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "Todo", want: true},
		{status: "In Progress", want: true},
		{status: "Done", want: true},
		{status: "", want: false},
		{status: "todo", want: false},
		{status: "InProgress", want: false},
		{status: "Cancelled", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStatus(tt.status))
		})
	}
}

func TestNewTask_Defaults(t *testing.T) {
	task := NewTask("write report", "", "", "proj-1", "alice@example.com")

	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, "proj-1", task.ProjectID)
	assert.Equal(t, "alice@example.com", task.Owner)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestNewTask_ExplicitStatus(t *testing.T) {
	task := NewTask("write report", "quarterly numbers", StatusInProgress, "proj-1", "alice@example.com")

	assert.Equal(t, StatusInProgress, task.Status)
	assert.Equal(t, "quarterly numbers", task.Description)
}

func TestTaskUpdate_Validate(t *testing.T) {
	title := "new title"
	empty := ""
	done := StatusDone
	bogus := "Cancelled"

	tests := []struct {
		name    string
		update  TaskUpdate
		wantErr bool
	}{
		{
			name:   "empty update",
			update: TaskUpdate{},
		},
		{
			name:   "title only",
			update: TaskUpdate{Title: &title},
		},
		{
			name:   "valid status",
			update: TaskUpdate{Status: &done},
		},
		{
			name:    "empty title",
			update:  TaskUpdate{Title: &empty},
			wantErr: true,
		},
		{
			name:    "invalid status",
			update:  TaskUpdate{Status: &bogus},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperr.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskUpdate_Changes_OnlyPresentFields(t *testing.T) {
	done := StatusDone
	upd := TaskUpdate{Status: &done}

	changes := upd.Changes()

	assert.Equal(t, StatusDone, changes["status"])
	assert.Contains(t, changes, "updated_at")
	assert.NotContains(t, changes, "title")
	assert.NotContains(t, changes, "description")
}
