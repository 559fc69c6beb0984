package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/model"
)

type ProjectHandler struct {
	projects ProjectStore
	tasks    TaskStore
	logger   *zap.Logger
}

func NewProjectHandler(projects ProjectStore, tasks TaskStore, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, tasks: tasks, logger: logger}
}

type createProjectRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// Create handles POST /projects/.
func (h *ProjectHandler) Create(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}

	p := model.NewProject(req.Title, req.Description, u.Email)
	id, err := h.projects.Create(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("failed to create project", zap.String("owner", u.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	h.logger.Info("project created", zap.String("project_id", id), zap.String("owner", u.Email))
	c.JSON(http.StatusCreated, gin.H{
		"id":          id,
		"message":     "Project created",
		"title":       p.Title,
		"description": p.Description,
	})
}

// List handles GET /projects/.
func (h *ProjectHandler) List(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}

	projects, err := h.projects.ListByOwner(c.Request.Context(), u.Email)
	if err != nil {
		h.logger.Error("failed to list projects", zap.String("owner", u.Email), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Update handles PUT /projects/:id. Only fields present in the body change.
func (h *ProjectHandler) Update(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var upd model.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid request body"})
		return
	}
	if err := upd.Validate(); err != nil {
		respondError(c, err)
		return
	}

	if err := h.projects.Update(c.Request.Context(), id, u.Email, upd.Changes()); err != nil {
		h.logger.Warn("failed to update project",
			zap.String("project_id", id),
			zap.String("owner", u.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

// Delete handles DELETE /projects/:id and cascades to the project's tasks.
// The two deletes are separate store operations; a crash in between leaves
// orphaned tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id := c.Param("id")

	if err := h.projects.Delete(c.Request.Context(), id, u.Email); err != nil {
		h.logger.Warn("failed to delete project",
			zap.String("project_id", id),
			zap.String("owner", u.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	deleted, err := h.tasks.DeleteByProject(c.Request.Context(), id, u.Email)
	if err != nil {
		h.logger.Error("cascade task deletion failed",
			zap.String("project_id", id),
			zap.String("owner", u.Email),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	h.logger.Info("project deleted",
		zap.String("project_id", id),
		zap.String("owner", u.Email),
		zap.Int64("tasks_deleted", deleted),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Project and related tasks deleted"})
}
