package handler_test

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskflow/internal/apperr"
	"taskflow/internal/model"
)

// In-memory stores standing in for the mongo repositories. They reproduce
// the owner-scoped filter semantics, including the validation error on
// malformed ids and the not-found on ownership mismatch.

type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, u *model.User) error {
	u.ID = primitive.NewObjectID()
	s.users[u.Email] = u
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, email)
	}
	return u, nil
}

type fakeProjectStore struct {
	projects map[string]*model.Project
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: make(map[string]*model.Project)}
}

func (s *fakeProjectStore) Create(_ context.Context, p *model.Project) (string, error) {
	p.ID = primitive.NewObjectID()
	s.projects[p.ID.Hex()] = p
	return p.ID.Hex(), nil
}

func (s *fakeProjectStore) ListByOwner(_ context.Context, owner string) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	for _, p := range s.projects {
		if p.Owner == owner {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

func (s *fakeProjectStore) FindByID(_ context.Context, id, owner string) (*model.Project, error) {
	return s.find(id, owner)
}

func (s *fakeProjectStore) find(id, owner string) (*model.Project, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", apperr.ErrValidation, id)
	}
	p, ok := s.projects[id]
	if !ok || p.Owner != owner {
		return nil, fmt.Errorf("%w: project %s", apperr.ErrNotFound, id)
	}
	return p, nil
}

func (s *fakeProjectStore) Update(_ context.Context, id, owner string, changes bson.M) error {
	p, err := s.find(id, owner)
	if err != nil {
		return err
	}
	if v, ok := changes["title"].(string); ok {
		p.Title = v
	}
	if v, ok := changes["description"].(string); ok {
		p.Description = v
	}
	if v, ok := changes["updated_at"].(time.Time); ok {
		p.UpdatedAt = v
	}
	return nil
}

func (s *fakeProjectStore) Delete(_ context.Context, id, owner string) error {
	if _, err := s.find(id, owner); err != nil {
		return err
	}
	delete(s.projects, id)
	return nil
}

type fakeTaskStore struct {
	tasks map[string]*model.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[string]*model.Task)}
}

func (s *fakeTaskStore) Create(_ context.Context, t *model.Task) (string, error) {
	t.ID = primitive.NewObjectID()
	s.tasks[t.ID.Hex()] = t
	return t.ID.Hex(), nil
}

func (s *fakeTaskStore) ListByProject(_ context.Context, projectID, owner string) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.ProjectID == projectID && t.Owner == owner {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (s *fakeTaskStore) ListByProjectAndStatus(_ context.Context, projectID, status, owner string) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.ProjectID == projectID && t.Status == status && t.Owner == owner {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (s *fakeTaskStore) find(id, owner string) (*model.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", apperr.ErrValidation, id)
	}
	t, ok := s.tasks[id]
	if !ok || t.Owner != owner {
		return nil, fmt.Errorf("%w: task %s", apperr.ErrNotFound, id)
	}
	return t, nil
}

func (s *fakeTaskStore) Update(_ context.Context, id, owner string, changes bson.M) error {
	t, err := s.find(id, owner)
	if err != nil {
		return err
	}
	if v, ok := changes["title"].(string); ok {
		t.Title = v
	}
	if v, ok := changes["description"].(string); ok {
		t.Description = v
	}
	if v, ok := changes["status"].(string); ok {
		t.Status = v
	}
	if v, ok := changes["updated_at"].(time.Time); ok {
		t.UpdatedAt = v
	}
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id, owner string) error {
	if _, err := s.find(id, owner); err != nil {
		return err
	}
	delete(s.tasks, id)
	return nil
}

func (s *fakeTaskStore) DeleteByProject(_ context.Context, projectID, owner string) (int64, error) {
	var deleted int64
	for id, t := range s.tasks {
		if t.ProjectID == projectID && t.Owner == owner {
			delete(s.tasks, id)
			deleted++
		}
	}
	return deleted, nil
}
