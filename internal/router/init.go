package router

import (
	"github.com/aditrahmn/contact-management-api/internal/application"
	"github.com/aditrahmn/contact-management-api/internal/container"
	pginfra "github.com/aditrahmn/contact-management-api/internal/infrastructure/postgres"
	handlers "github.com/aditrahmn/contact-management-api/internal/interface/http"
	"github.com/aditrahmn/contact-management-api/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	contactRepo := pginfra.NewContactRepository(pool)
	addressRepo := pginfra.NewAddressRepository(pool)

	userSvc := application.NewUserService(userRepo, logger, container.GetRabbitPub(), container.GetGCS(), cfg.GCSBucket)
	contactSvc := application.NewContactService(contactRepo, logger, container.GetES(), cfg.ESContactsIndex)
	addressSvc := application.NewAddressService(addressRepo, contactSvc, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), userRepo))
	r.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger), userRepo))
	r.Add(modules.NewAddressModule(handlers.NewAddressHandler(addressSvc, logger), userRepo))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
