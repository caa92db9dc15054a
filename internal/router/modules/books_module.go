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

// BooksModule registers book CRUD. Reads are open to any authenticated
// user; writes require ADMIN or LIBRARIAN.
type BooksModule struct {
	Handler *handlers.BookHandler
	Auth    *application.AuthService
	JWT     *helpers.JWTManager
}

func NewBooksModule(h *handlers.BookHandler, auth *application.AuthService, jwt *helpers.JWTManager) *BooksModule {
	return &BooksModule{Handler: h, Auth: auth, JWT: jwt}
}

func (m *BooksModule) Register(rg *gin.RouterGroup) {
	books := rg.Group("/books")
	books.Use(middleware.Auth(m.Auth, m.JWT))
	books.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))

	books.GET("", m.Handler.List)
	books.GET("/:id", m.Handler.Get)

	staff := books.Group("")
	staff.Use(middleware.RequireRoles(entity.RoleAdmin, entity.RoleLibrarian))
	{
		staff.POST("", m.Handler.Create)
		staff.PATCH("/:id", m.Handler.Update)
		staff.DELETE("/:id", m.Handler.Delete)
	}
}
