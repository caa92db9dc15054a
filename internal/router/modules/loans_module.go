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

// LoansModule registers loan CRUD. Every operation, reads included, is
// restricted to ADMIN or LIBRARIAN.
type LoansModule struct {
	Handler *handlers.LoanHandler
	Auth    *application.AuthService
	JWT     *helpers.JWTManager
}

func NewLoansModule(h *handlers.LoanHandler, auth *application.AuthService, jwt *helpers.JWTManager) *LoansModule {
	return &LoansModule{Handler: h, Auth: auth, JWT: jwt}
}

func (m *LoansModule) Register(rg *gin.RouterGroup) {
	loans := rg.Group("/loans")
	loans.Use(middleware.Auth(m.Auth, m.JWT))
	loans.Use(middleware.RequireRoles(entity.RoleAdmin, entity.RoleLibrarian))
	loans.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		loans.POST("", m.Handler.Create)
		loans.GET("", m.Handler.List)
		loans.GET("/:id", m.Handler.Get)
		loans.PATCH("/:id", m.Handler.Update)
		loans.DELETE("/:id", m.Handler.Delete)
	}
}
