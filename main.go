package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/tripvista/travel-api/config"
	"github.com/tripvista/travel-api/internal/auth"
	"github.com/tripvista/travel-api/internal/consumer"
	"github.com/tripvista/travel-api/internal/handler"
	"github.com/tripvista/travel-api/internal/middleware"
	"github.com/tripvista/travel-api/internal/notifier"
	"github.com/tripvista/travel-api/internal/repository"
	"github.com/tripvista/travel-api/internal/service"
	"github.com/tripvista/travel-api/pkg/database"
	"github.com/tripvista/travel-api/pkg/rabbitmq"
	"github.com/tripvista/travel-api/pkg/storage"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer database.Close(db)

	// RabbitMQ is optional plumbing for the confirmation mail. A missing
	// broker degrades to "no notification", never to "no booking".
	var publisher *rabbitmq.Publisher
	var mqConsumer *rabbitmq.Consumer
	if publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL); err != nil {
		log.Printf("rabbitmq publisher unavailable, notifications disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()

		mqConsumer, err = rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq consumer unavailable: %v", err)
		} else {
			defer mqConsumer.Close()
			msgs, err := mqConsumer.Consume()
			if err != nil {
				log.Fatalf("failed to start consuming: %v", err)
			}
			mailer := notifier.NewMailer(
				cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
				cfg.FromAddress, cfg.AdminMailbox,
			)
			consumer.NewBookingConsumer(mailer).Start(msgs)
		}
	}

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	catalogSvc := service.NewCatalogService(categoryRepo, packageRepo, eventRepo)
	var pub service.Publisher
	if publisher != nil {
		pub = publisher
	}
	bookingSvc := service.NewBookingService(bookingRepo, packageRepo, eventRepo, pub)
	contactSvc := service.NewContactService(contactRepo)

	uploadStore, err := storage.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "travel-api"})
	})
	e.Static("/uploads", cfg.UploadDir)

	public := e.Group("/api/v1")
	authed := e.Group("/api/v1", middleware.Auth(cfg.JWTSecret))
	admin := e.Group("/api/v1/admin",
		middleware.Auth(cfg.JWTSecret),
		middleware.RequireRole(auth.RoleAdmin),
	)

	handler.NewCategoryHandler(catalogSvc).RegisterRoutes(public, admin)
	handler.NewPackageHandler(catalogSvc).RegisterRoutes(public, admin)
	handler.NewEventHandler(catalogSvc).RegisterRoutes(public, admin)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(authed, admin)
	handler.NewContactHandler(contactSvc).RegisterRoutes(public, admin)
	handler.NewUploadHandler(uploadStore).RegisterRoutes(admin)
	handler.NewSiteHandler(catalogSvc, cfg.PublicBaseURL).RegisterRoutes(e)

	go func() {
		log.Printf("Travel API starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
