package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskflow/internal/handler"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	jwtSecret string,
	users UserFinder,
	ping func(ctx context.Context) error,
	corsOrigins []string,
) *Router {
	r := gin.Default()

	r.Use(MetricsMiddleware())
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "TaskFlow Backend is running", "status": "healthy"})
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := ping(ctx); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret, users))
	{
		auth.GET("/users/me", userHandler.Me)

		auth.POST("/projects/", projectHandler.Create)
		auth.GET("/projects/", projectHandler.List)
		auth.PUT("/projects/:id", projectHandler.Update)
		auth.DELETE("/projects/:id", projectHandler.Delete)

		auth.POST("/tasks/:project_id", taskHandler.Create)
		auth.GET("/tasks/project/:project_id", taskHandler.ListByProject)
		auth.GET("/tasks/project/:project_id/filter", taskHandler.Filter)
		auth.PUT("/tasks/:id", taskHandler.Update)
		auth.DELETE("/tasks/:id", taskHandler.Delete)
	}

	return &Router{Engine: r}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
