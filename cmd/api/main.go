package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"aerotours/internal/config"
	"aerotours/internal/database"
	"aerotours/internal/middleware"
	"aerotours/internal/modules/admin"
	"aerotours/internal/modules/auth"
	"aerotours/internal/modules/catalog"
	"aerotours/internal/modules/lead"
	"aerotours/internal/modules/notification"
	jwtsvc "aerotours/internal/pkg/jwt"
	"aerotours/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	destinationRepo := repository.NewDestinationRepository(db)
	tourRepo := repository.NewTourRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	imageRepo := repository.NewImageRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	contactInfoRepo := repository.NewContactInfoRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	adminUserRepo := repository.NewAdminUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(adminUserRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(
		destinationRepo,
		tourRepo,
		serviceRepo,
		imageRepo,
		contactInfoRepo,
	)
	catalogHandler := catalog.NewHandler(catalogService)

	notifier := lead.NewHTTPNotifier(cfg.NotifyURL)
	leadService := lead.NewService(leadRepo, destinationRepo, tourRepo, notifier)
	leadHandler := lead.NewHandler(leadService)

	mailer := notification.NewSMTPMailer(cfg.Email)
	notificationService := notification.NewService(mailer, cfg.Email.To)
	notificationHandler := notification.NewHandler(notificationService)

	adminService := admin.NewService(
		destinationRepo,
		tourRepo,
		serviceRepo,
		imageRepo,
		leadRepo,
		contactInfoRepo,
		settingRepo,
	)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	// Standalone notification endpoint, mounted at the engine root so its
	// path stays /api/send-notification.
	notificationHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		leadHandler.RegisterRoutes(v1)

		// back office
		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			adminHandler.RegisterRoutes(adminGroup)
		}
	}

	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatal(err)
	}
}
