package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aditrahmn/contact-management-api/internal/container"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
	handlers "github.com/aditrahmn/contact-management-api/internal/interface/http"
	"github.com/aditrahmn/contact-management-api/internal/interface/middleware"
)

// ContactModule wires the contact CRUD and search routes; everything requires
// an authenticated caller.
type ContactModule struct {
	Handler *handlers.ContactHandler
	Users   repo.UserRepository
}

func NewContactModule(h *handlers.ContactHandler, users repo.UserRepository) *ContactModule {
	return &ContactModule{Handler: h, Users: users}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.POST("/contacts", m.Handler.Create)
		auth.GET("/contacts", m.Handler.Search)
		auth.GET("/contacts/:contactId", m.Handler.Get)
		auth.PUT("/contacts/:contactId", m.Handler.Update)
		auth.DELETE("/contacts/:contactId", m.Handler.Remove)

		// Secondary-index lookup lives outside /contacts to keep the
		// :contactId wildcard unambiguous.
		auth.GET("/search/contacts", m.Handler.QuickSearch)
	}
}
