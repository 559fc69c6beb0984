package httpserver

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/util"
	"taskflow/pkg/metrics"
)

// UserFinder resolves a token subject to a stored user.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthMiddleware gates protected routes: it extracts the bearer token,
// verifies it, resolves the subject to a user record, and makes the user
// available to handlers. Any failure aborts with 401.
func AuthMiddleware(jwtSecret string, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := util.ExtractToken(c.Request)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		email, err := util.ParseJWT(token, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		u, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// store the resolved user so handlers can read it
		c.Set("current_user", u)

		c.Next()
	}
}

// MetricsMiddleware records request duration and count per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
