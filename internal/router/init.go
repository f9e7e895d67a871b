package router

import (
	"github.com/alam-gir/agency/internal/application"
	"github.com/alam-gir/agency/internal/container"
	gcsinfra "github.com/alam-gir/agency/internal/infrastructure/gcs"
	pginfra "github.com/alam-gir/agency/internal/infrastructure/postgres"
	handlers "github.com/alam-gir/agency/internal/interface/http"
	"github.com/alam-gir/agency/internal/interface/middleware"
	"github.com/alam-gir/agency/internal/router/modules"
)

// InitModules wires repositories, services, handlers and routes from the
// container singletons. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	assets := pginfra.NewAssetRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	projects := pginfra.NewProjectRepository(pool)
	packages := pginfra.NewPackageRepository(pool)
	services := pginfra.NewServiceRepository(pool)
	orders := pginfra.NewOrderRepository(pool)

	store := gcsinfra.NewStore(container.GetGCS(), cfg.GCSBucket)
	exchange := application.NewAssetExchange(store, assets, logger)

	authSvc := &application.AuthService{
		Users:        users,
		JWT:          container.GetJWT(),
		Exchange:     exchange,
		Redis:        container.GetRedis(),
		Mail:         container.GetMailgun(),
		Logger:       logger,
		AvatarFolder: cfg.AvatarFolder,
		ResetURL:     cfg.ResetPasswordURL,
		ResetTTL:     cfg.ResetTokenTTL,
	}
	userSvc := &application.UserService{
		Users:        users,
		Exchange:     exchange,
		AvatarFolder: cfg.AvatarFolder,
	}
	searchSvc := &application.SearchService{
		ES:     container.GetES(),
		Index:  cfg.ESServicesIndex,
		Logger: logger,
	}
	orderSvc := &application.OrderService{
		Orders:  orders,
		Mail:    container.GetMailgun(),
		AdminTo: cfg.MailAdminTo,
		Logger:  logger,
	}

	auth := middleware.Auth(users, container.GetJWT())

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	categoryHandler := &handlers.CategoryHandler{
		Categories: categories,
		Exchange:   exchange,
		IconFolder: cfg.IconFolder,
		Logger:     logger,
	}
	projectHandler := &handlers.ProjectHandler{
		Projects:    projects,
		Assets:      assets,
		Exchange:    exchange,
		ImageFolder: cfg.ProjectImageFolder,
		FileFolder:  cfg.ProjectFileFolder,
		Logger:      logger,
	}
	packageHandler := &handlers.PackageHandler{
		Packages:   packages,
		Exchange:   exchange,
		IconFolder: cfg.IconFolder,
		Logger:     logger,
	}
	serviceHandler := &handlers.ServiceHandler{
		Services:   services,
		Exchange:   exchange,
		Search:     searchSvc,
		IconFolder: cfg.IconFolder,
		Logger:     logger,
	}
	orderHandler := &handlers.OrderHandler{
		Svc:    orderSvc,
		Orders: orders,
		Logger: logger,
	}

	r.Add(modules.NewAuthModule(authHandler, auth))
	r.Add(modules.NewUserModule(userHandler, auth))
	r.Add(modules.NewCategoryModule(categoryHandler, auth))
	r.Add(modules.NewProjectModule(projectHandler, auth))
	r.Add(modules.NewPackageModule(packageHandler, auth))
	r.Add(modules.NewServiceModule(serviceHandler, auth))
	r.Add(modules.NewOrderModule(orderHandler, auth))
}
