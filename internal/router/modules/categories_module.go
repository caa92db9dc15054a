package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/library-management-api/internal/application"
	"github.com/oksasatya/library-management-api/internal/container"
	"github.com/oksasatya/library-management-api/internal/domain/entity"
	handlers "github.com/oksasatya/library-management-api/internal/interface/http"
	"github.com/oksasatya/library-management-api/internal/interface/middleware"
	"github.com/oksasatya/library-management-api/pkg/helpers"
)

// CategoriesModule registers category CRUD. Reads are open to any
// authenticated user; writes require ADMIN or LIBRARIAN.
type CategoriesModule struct {
	Handler *handlers.CategoryHandler
	Auth    *application.AuthService
	JWT     *helpers.JWTManager
}

func NewCategoriesModule(h *handlers.CategoryHandler, auth *application.AuthService, jwt *helpers.JWTManager) *CategoriesModule {
	return &CategoriesModule{Handler: h, Auth: auth, JWT: jwt}
}

func (m *CategoriesModule) Register(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.Use(middleware.Auth(m.Auth, m.JWT))
	categories.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))

	categories.GET("", m.Handler.List)
	categories.GET("/:id", m.Handler.Get)

	staff := categories.Group("")
	staff.Use(middleware.RequireRoles(entity.RoleAdmin, entity.RoleLibrarian))
	{
		staff.POST("", m.Handler.Create)
		staff.PATCH("/:id", m.Handler.Update)
		staff.DELETE("/:id", m.Handler.Delete)
	}
}
