package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskflow/internal/handler"
	"taskflow/internal/httpserver"
	"taskflow/internal/service"
)

const testSecret = "handler-test-secret"

type env struct {
	engine   *gin.Engine
	users    *fakeUserStore
	projects *fakeProjectStore
	tasks    *fakeTaskStore
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newFakeUserStore()
	projects := newFakeProjectStore()
	tasks := newFakeTaskStore()

	logger := zap.NewNop()
	authService := service.NewAuthService(users, testSecret, time.Hour)

	router := httpserver.NewRouter(
		handler.NewAuthHandler(authService, logger),
		handler.NewUserHandler(),
		handler.NewProjectHandler(projects, tasks, logger),
		handler.NewTaskHandler(tasks, projects, logger),
		testSecret,
		users,
		func(ctx context.Context) error { return nil },
		nil,
	)

	return &env{
		engine:   router.Engine,
		users:    users,
		projects: projects,
		tasks:    tasks,
	}
}

func (e *env) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (e *env) signup(t *testing.T, email, password string) {
	t.Helper()

	w := e.request(t, http.MethodPost, "/auth/signup", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (e *env) login(t *testing.T, email, password string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	token, ok := decode(t, w)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func (e *env) signupAndLogin(t *testing.T, email string) string {
	t.Helper()
	e.signup(t, email, "correct-horse-battery")
	return e.login(t, email, "correct-horse-battery")
}

func (e *env) createProject(t *testing.T, token, title string) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/projects/", token, gin.H{"title": title})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decode(t, w)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}

func (e *env) createTask(t *testing.T, token, projectID string, body gin.H) string {
	t.Helper()

	w := e.request(t, http.MethodPost, "/tasks/"+projectID, token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decode(t, w)["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)
	return id
}
