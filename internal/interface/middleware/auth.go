package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/internal/domain/entity"
	"github.com/oksasatya/library-management-api/pkg/helpers"
	"github.com/oksasatya/library-management-api/pkg/response"
)

const (
	ctxUserKey   = "currentUser"
	ctxUserIDKey = "userID"
	ctxRoleKey   = "userRole"
)

// Auth validates the Bearer token and resolves its subject to a live
// account. A valid token whose user has since been soft-deleted is rejected.
// On success the user lands in the Gin context for downstream handlers.
func Auth(svc *application.AuthService, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abort(c, "missing access token")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			abort(c, "invalid access token")
			return
		}
		id, err := claims.UserID()
		if err != nil {
			abort(c, "invalid access token")
			return
		}

		u, err := svc.ValidateUser(c.Request.Context(), id)
		if err != nil {
			abort(c, "invalid access token")
			return
		}

		c.Set(ctxUserKey, u)
		c.Set(ctxUserIDKey, u.ID)
		c.Set(ctxRoleKey, u.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abort(c *gin.Context, msg string) {
	response.Fail(c, http.StatusUnauthorized, msg, nil)
	c.Abort()
}

// CurrentUser returns the authenticated user set by Auth, or nil on an
// unauthenticated request.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
