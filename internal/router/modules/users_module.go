package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/internal/container"
	handlers "github.com/oksasatya/library-management-api/internal/interface/http"
	"github.com/oksasatya/library-management-api/internal/interface/middleware"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

// UsersModule registers user CRUD. Any authenticated user may call every
// endpoint, including create and delete; there is deliberately no role gate
// here, matching the documented server-permissive policy for this resource.
type UsersModule struct {
	Handler *handlers.UserHandler
	Auth    *application.AuthService
	JWT     *helpers.JWTManager
}

func NewUsersModule(h *handlers.UserHandler, auth *application.AuthService, jwt *helpers.JWTManager) *UsersModule {
	return &UsersModule{Handler: h, Auth: auth, JWT: jwt}
}

func (m *UsersModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	users.Use(middleware.Auth(m.Auth, m.JWT))
	users.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		users.POST("", m.Handler.Create)
		users.GET("", m.Handler.List)
		users.GET("/:id", m.Handler.Get)
		users.PATCH("/:id", m.Handler.Update)
		users.DELETE("/:id", m.Handler.Delete)
	}
}
