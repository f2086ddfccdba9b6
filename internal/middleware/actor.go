package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/HealthHubServices/healthhub-api/internal/audit"
	"github.com/HealthHubServices/healthhub-api/internal/httperr"
	"github.com/HealthHubServices/healthhub-api/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// ActorMiddleware records who is acting from the request headers. There is
// no authentication model here; the headers only scope views and attribute
// audit entries.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, c.GetHeader("X-User-ID"))
		c.Set(ContextUserRole, c.GetHeader("X-User-Role"))
		c.Next()
	}
}

// ActorFrom reads the acting user back out of the request context.
func ActorFrom(c *gin.Context) audit.Actor {
	return audit.Actor{
		ID:   c.GetString(ContextUserID),
		Role: c.GetString(ContextUserRole),
	}
}

// RequireRole gates a route group on the declared role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-Role") != string(role) {
			httperr.Forbidden(c, "forbidden", "This view requires the "+string(role)+" role.")
			c.Abort()
			return
		}
		c.Next()
	}
}
