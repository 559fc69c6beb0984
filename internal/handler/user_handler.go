package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   u.Email,
		"message": "You are authenticated",
	})
}
