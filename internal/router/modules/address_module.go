package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aditrahmn/contact-management-api/internal/container"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
	handlers "github.com/aditrahmn/contact-management-api/internal/interface/http"
	"github.com/aditrahmn/contact-management-api/internal/interface/middleware"
)

// AddressModule wires address routes nested under a contact.
type AddressModule struct {
	Handler *handlers.AddressHandler
	Users   repo.UserRepository
}

func NewAddressModule(h *handlers.AddressHandler, users repo.UserRepository) *AddressModule {
	return &AddressModule{Handler: h, Users: users}
}

func (m *AddressModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Users))
	auth.Use(middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByUsername(), nil))
	{
		auth.POST("/contacts/:contactId/addresses", m.Handler.Create)
		auth.GET("/contacts/:contactId/addresses", m.Handler.List)
		auth.GET("/contacts/:contactId/addresses/:addressId", m.Handler.Get)
		auth.PUT("/contacts/:contactId/addresses/:addressId", m.Handler.Update)
		auth.DELETE("/contacts/:contactId/addresses/:addressId", m.Handler.Remove)
	}
}
