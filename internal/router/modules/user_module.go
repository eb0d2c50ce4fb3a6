package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aditrahmn/contact-management-api/internal/container"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
	handlers "github.com/aditrahmn/contact-management-api/internal/interface/http"
	"github.com/aditrahmn/contact-management-api/internal/interface/middleware"
)

// UserModule wires user routes.
// Public: POST /api/users, POST /api/users/login
// Protected: GET/PATCH/DELETE /api/users/current, POST /api/users/current/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repo.UserRepository
}

func NewUserModule(h *handlers.UserHandler, users repo.UserRepository) *UserModule {
	return &UserModule{Handler: h, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)

	rg.POST("/users", registerLimiter, m.Handler.Register)
	rg.POST("/users/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.GET("/users/current", m.Handler.Get)
		auth.PATCH("/users/current", m.Handler.Update)
		auth.DELETE("/users/current", m.Handler.Logout)
		auth.POST("/users/current/avatar", m.Handler.UploadAvatar)
	}
}
