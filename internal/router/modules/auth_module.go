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

type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, auth *application.AuthService, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth, m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/auth/profile", m.Handler.Profile)
	}
}
