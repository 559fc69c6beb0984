package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/model"
)

type TaskHandler struct {
	tasks    TaskStore
	projects ProjectStore
	logger   *zap.Logger
}

func NewTaskHandler(tasks TaskStore, projects ProjectStore, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, projects: projects, logger: logger}
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=Todo 'In Progress' Done"`
}

// Create handles POST /tasks/:project_id. The project must exist and belong
// to the caller.
func (h *TaskHandler) Create(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}

	if _, err := h.projects.FindByID(c.Request.Context(), projectID, u.Email); err != nil {
		h.logger.Warn("task creation rejected",
			zap.String("project_id", projectID),
			zap.String("owner", u.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	t := model.NewTask(req.Title, req.Description, req.Status, projectID, u.Email)
	id, err := h.tasks.Create(c.Request.Context(), t)
	if err != nil {
		h.logger.Error("failed to create task", zap.String("project_id", projectID), zap.Error(err))
		respondError(c, err)
		return
	}

	h.logger.Info("task created",
		zap.String("task_id", id),
		zap.String("project_id", projectID),
		zap.String("owner", u.Email),
	)
	c.JSON(http.StatusCreated, gin.H{
		"id":      id,
		"message": "Task created",
		"title":   t.Title,
		"status":  t.Status,
	})
}

// ListByProject handles GET /tasks/project/:project_id.
func (h *TaskHandler) ListByProject(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	tasks, err := h.tasks.ListByProject(c.Request.Context(), projectID, u.Email)
	if err != nil {
		h.logger.Error("failed to list tasks", zap.String("project_id", projectID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// Update handles PUT /tasks/:id. Only fields present in the body change.
func (h *TaskHandler) Update(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var upd model.TaskUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}
	if err := upd.Validate(); err != nil {
		respondError(c, err)
		return
	}

	if err := h.tasks.Update(c.Request.Context(), id, u.Email, upd.Changes()); err != nil {
		h.logger.Warn("failed to update task",
			zap.String("task_id", id),
			zap.String("owner", u.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// Delete handles DELETE /tasks/:id.
func (h *TaskHandler) Delete(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.tasks.Delete(c.Request.Context(), id, u.Email); err != nil {
		h.logger.Warn("failed to delete task",
			zap.String("task_id", id),
			zap.String("owner", u.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// Filter handles GET /tasks/project/:project_id/filter?status=.
func (h *TaskHandler) Filter(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	status := c.Query("status")
	if !model.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("invalid status, must be one of: %s, %s, %s",
				model.StatusTodo, model.StatusInProgress, model.StatusDone),
		})
		return
	}

	tasks, err := h.tasks.ListByProjectAndStatus(c.Request.Context(), projectID, status, u.Email)
	if err != nil {
		h.logger.Error("failed to filter tasks",
			zap.String("project_id", projectID),
			zap.String("status", status),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
