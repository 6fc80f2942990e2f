package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"techmart-be/internal/config"
	"techmart-be/internal/pkg/logger"
	"techmart-be/internal/pkg/mailer"
	"techmart-be/internal/repository/memory"
	"techmart-be/internal/repository/unitofwork"
	adminCatalog "techmart-be/pkg/admin/catalog"
	"techmart-be/pkg/admin/dashboard"
	adminEvents "techmart-be/pkg/admin/events"
	"techmart-be/pkg/admin/orders"
	"techmart-be/pkg/catalog"
	pkgEvents "techmart-be/pkg/events"
	"techmart-be/pkg/imageref"
	imageMemory "techmart-be/pkg/imagestore/memory"
	"techmart-be/pkg/store"
)

const uploadDir = "assets/products/product_images"

type recordingSink struct {
	mu     sync.Mutex
	events []pkgEvents.Event
}

func (s *recordingSink) Publish(ctx context.Context, e pkgEvents.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) types() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.EventType()
	}
	return out
}

type fixture struct {
	factory  unitofwork.RepositoryFactory
	sink     *recordingSink
	images   *imageMemory.Store
	sessions ISessionService
	catalog  ICatalogService
	cart     ICartService
	orders   IOrderService
	admin    IAdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "service.log"))
	factory := unitofwork.NewMemoryRepositoryFactory(memory.NewSeededStore(catalog.DemoProducts(time.Now())))
	sink := &recordingSink{}
	publisher := adminEvents.NewBusPublisher(log, sink)
	images := imageMemory.NewStore()
	resolver := imageref.NewResolver(images)
	mail := mailer.NewEmailService(config.SMTPConfig{}, "http://shop.test", log)
	processor := orders.NewProcessor(log, publisher)
	sessionRepo := memory.NewSessionRepository(time.Hour)

	return &fixture{
		factory:  factory,
		sink:     sink,
		images:   images,
		sessions: NewSessionService(sessionRepo, factory, "test-secret", time.Hour, log),
		catalog:  NewCatalogService(factory, publisher, resolver, log),
		cart:     NewCartService(factory, publisher, mail, resolver, log),
		orders:   NewOrderService(factory, processor, log),
		admin: NewAdminService(
			factory,
			adminCatalog.NewManager(log, publisher),
			processor,
			dashboard.NewAggregator(log),
			sessionRepo,
			images,
			resolver,
			uploadDir,
			mail,
			log,
		),
	}
}

func (f *fixture) stock(t *testing.T, id string) int {
	t.Helper()
	p, err := f.factory.NewUnitOfWork(context.Background()).ProductRepository().FindById(context.Background(), id)
	if err != nil || p == nil {
		t.Fatalf("product %s: %v", id, err)
	}
	return p.Stock
}

func newSession(id string) *store.Session {
	return store.NewSession(id, time.Now())
}
