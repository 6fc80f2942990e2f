package events

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	pkgEvents "techmart-be/pkg/events"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []pkgEvents.Event
	err    error
}

func (s *recordingSink) Publish(ctx context.Context, e pkgEvents.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func testLogger(t *testing.T) logger.ILogger {
	return logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
}

func TestBusPublisherFansOut(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{err: errors.New("nats down")}
	p := NewBusPublisher(testLogger(t), a, nil, b)

	order := &entity.Order{
		Id:     "ABCD1234",
		Status: entity.OrderStatusPending,
		Total:  decimal.RequireFromString("25"),
		Items:  []entity.OrderItem{{ProductId: "1", Quantity: 2}, {ProductId: "2", Quantity: 1}},
	}
	p.PublishOrderPlaced(context.Background(), order)

	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)

	evt := a.events[0]
	assert.Equal(t, pkgEvents.OrderPlaced, evt.EventType())
	assert.Equal(t, "25.00", evt.Payload()["total"])
	assert.Equal(t, 3, evt.Payload()["items"])
}

func TestStockUpdatedFlagsLowStock(t *testing.T) {
	sink := &recordingSink{}
	p := NewBusPublisher(testLogger(t), sink)

	p.PublishStockUpdated(context.Background(), "P006", 8, 3)

	require.Len(t, sink.events, 1)
	assert.Equal(t, true, sink.events[0].Payload()["low_stock"])
}
