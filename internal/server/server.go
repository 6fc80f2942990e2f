package server

import (
	"context"
	"log"
	"path/filepath"

	"techmart-be/internal/bootstrap"
	"techmart-be/internal/config"
	"techmart-be/internal/pkg/metrics"
	"techmart-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
		AppName:   "TechMart Storefront",
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: cfg.App.CorsAllowedOrigins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + serverutils.SessionHeader + ", X-Admin-Key",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, " + serverutils.SessionHeader,
	}))

	app.Use(otelfiber.Middleware())
	app.Use(metrics.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Get("/metrics", metrics.Handler())

	// Uploaded and seeded product images
	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "filesystem" {
		app.Static("/assets", filepath.Join(cfg.Storage.Root, "assets"))
	}

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.SessionController.RegisterRoutes(api, c.SessionMiddleware)
	c.CatalogController.RegisterRoutes(api, c.SessionMiddleware)
	c.CartController.RegisterRoutes(api, c.SessionMiddleware)
	c.OrderController.RegisterRoutes(api, c.SessionMiddleware)

	// Before the admin group, whose Use would otherwise claim /admin/ws.
	c.LiveFeedHandler.RegisterRoutes(api, c.SessionMiddleware, c.AdminMiddleware)
	c.AdminController.RegisterRoutes(api, c.AdminMiddleware)
}
