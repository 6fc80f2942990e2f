package bootstrap

import (
	"context"
	"log"
	"time"

	"techmart-be/internal/config"
	"techmart-be/internal/controller"
	"techmart-be/internal/handler"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/mailer"
	"techmart-be/internal/pkg/serverutils"
	"techmart-be/internal/repository/contract"
	"techmart-be/internal/repository/implementation"
	"techmart-be/internal/repository/memory"
	"techmart-be/internal/repository/unitofwork"
	"techmart-be/internal/service"
	"techmart-be/internal/websocket"
	adminCatalog "techmart-be/pkg/admin/catalog"
	"techmart-be/pkg/admin/dashboard"
	adminEvents "techmart-be/pkg/admin/events"
	"techmart-be/pkg/admin/orders"
	"techmart-be/pkg/catalog"
	"techmart-be/pkg/imageref"
	"techmart-be/pkg/imagestore"

	pktNats "techmart-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	CatalogController controller.ICatalogController
	CartController    controller.ICartController
	OrderController   controller.IOrderController
	AdminController   controller.IAdminController

	// Middleware
	SessionMiddleware fiber.Handler
	AdminMiddleware   fiber.Handler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Live feed
	LiveFeedHandler *handler.LiveFeedHandler
	WebSocketHub    *websocket.Hub

	Logger         logger.ILogger
	SessionService service.ISessionService

	natsPub *pktNats.Publisher
	pubSub  *gochannel.GoChannel
	rdb     *redis.Client
}

// NewContainer wires the storefront. A nil db runs the catalog and orders on
// the in-memory store seeded with the demo products.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		sysLogger.Info("BOOTSTRAP", "No database configured, using in-memory catalog", nil)
		uowFactory = unitofwork.NewMemoryRepositoryFactory(memory.NewSeededStore(catalog.DemoProducts(time.Now())))
	}

	images, err := imagestore.New(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize image store: %v", err)
	}
	resolver := imageref.NewResolver(images)

	emailService := mailer.NewEmailService(cfg.SMTP, cfg.App.BaseURL, sysLogger)

	// 2. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if _, err := rdb.Ping(pingCtx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Running without it", err)
			_ = rdb.Close()
			rdb = nil
		}
		cancel()
	}

	var sessionRepo contract.SessionRepository
	switch {
	case cfg.Session.Store == "redis" && rdb != nil:
		sessionRepo = implementation.NewRedisSessionRepository(rdb, cfg.Session.TTL)
	case cfg.Session.Store == "redis":
		log.Printf("[WARN] SESSION_STORE=redis but Redis is unavailable, keeping sessions in memory")
		fallthrough
	default:
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL)
	}

	// NATS is optional; without it events stay in-process.
	var natsPub *pktNats.Publisher
	sinks := []adminEvents.Sink{}
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sinks = append(sinks, natsPub)
		}
	}

	// 3. Event Bus + Live Feed
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	wsLogger := logger.NewIsolatedLogger(cfg.App.LiveFeedLogPath)
	wsHub := websocket.NewHub(rdb, wsLogger)

	publisherService := service.NewPublisherService(pubSub, service.LiveFeedTopic)
	consumerService := service.NewConsumerService(pubSub, service.LiveFeedTopic, wsHub, wsLogger)

	eventPublisher := adminEvents.NewBusPublisher(sysLogger, append([]adminEvents.Sink{publisherService}, sinks...)...)

	// 4. Domain Components
	catalogManager := adminCatalog.NewManager(sysLogger, eventPublisher)
	orderProcessor := orders.NewProcessor(sysLogger, eventPublisher)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	// 5. Services
	sessionService := service.NewSessionService(sessionRepo, uowFactory, cfg.Session.Secret, cfg.Session.TTL, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, eventPublisher, resolver, sysLogger)
	cartService := service.NewCartService(uowFactory, eventPublisher, emailService, resolver, sysLogger)
	orderService := service.NewOrderService(uowFactory, orderProcessor, sysLogger)
	adminService := service.NewAdminService(
		uowFactory,
		catalogManager,
		orderProcessor,
		dashboardAggregator,
		sessionRepo,
		images,
		resolver,
		cfg.Storage.UploadDir,
		emailService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		CatalogController: controller.NewCatalogController(catalogService),
		CartController:    controller.NewCartController(cartService),
		OrderController:   controller.NewOrderController(orderService),
		AdminController:   controller.NewAdminController(adminService),

		SessionMiddleware: serverutils.SessionMiddleware(sessionService),
		AdminMiddleware:   serverutils.AdminMiddleware(cfg.App.AdminAPIKey, sysLogger),

		ConsumerService: consumerService,

		LiveFeedHandler: handler.NewLiveFeedHandler(wsHub, publisherService, wsLogger),
		WebSocketHub:    wsHub,

		Logger:         sysLogger,
		SessionService: sessionService,

		natsPub: natsPub,
		pubSub:  pubSub,
		rdb:     rdb,
	}
}

// Close releases the event bus and external connections.
func (c *Container) Close() {
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("BOOTSTRAP", "Failed to close event bus", map[string]interface{}{"error": err.Error()})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	_ = c.Logger.Sync()
}
