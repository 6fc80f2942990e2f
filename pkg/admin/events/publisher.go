package events

import (
	"context"

	"techmart-be/internal/entity"
	"techmart-be/internal/pkg/logger"
	pkgEvents "techmart-be/pkg/events"
)

// Publisher emits storefront events for the live feed and external consumers.
// Publishing never fails the calling operation; errors are logged.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, order *entity.Order)
	PublishOrderCancelled(ctx context.Context, order *entity.Order)
	PublishOrderStatusChanged(ctx context.Context, order *entity.Order, previous entity.OrderStatus)
	PublishProductUpserted(ctx context.Context, product *entity.Product, created bool)
	PublishProductDeleted(ctx context.Context, productId string)
	PublishStockUpdated(ctx context.Context, productId string, previous, current int)
	PublishImageUpdated(ctx context.Context, productId, image string)
	PublishReviewAdded(ctx context.Context, product *entity.Product, rating int)
}

// Sink is one destination: the in-process bus or NATS.
type Sink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

type BusPublisher struct {
	sinks  []Sink
	logger logger.ILogger
}

// NewBusPublisher fans each event out to every sink. Nil sinks are skipped so
// optional transports can be passed unconditionally.
func NewBusPublisher(logger logger.ILogger, sinks ...Sink) *BusPublisher {
	active := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return &BusPublisher{sinks: active, logger: logger}
}

func (p *BusPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := pkgEvents.New(eventType, data)
	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, evt); err != nil {
			p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
		}
	}
}

func orderData(order *entity.Order) map[string]interface{} {
	return map[string]interface{}{
		"order_id":    order.Id,
		"session_id":  order.SessionId,
		"status":      string(order.Status),
		"total":       order.Total.StringFixed(2),
		"items":       order.ItemCount(),
		"entity_type": "order",
		"entity_id":   order.Id,
	}
}

func (p *BusPublisher) PublishOrderPlaced(ctx context.Context, order *entity.Order) {
	p.publish(ctx, pkgEvents.OrderPlaced, orderData(order))
}

func (p *BusPublisher) PublishOrderCancelled(ctx context.Context, order *entity.Order) {
	p.publish(ctx, pkgEvents.OrderCancelled, orderData(order))
}

func (p *BusPublisher) PublishOrderStatusChanged(ctx context.Context, order *entity.Order, previous entity.OrderStatus) {
	data := orderData(order)
	data["previous_status"] = string(previous)
	p.publish(ctx, pkgEvents.OrderStatusChanged, data)
}

func (p *BusPublisher) PublishProductUpserted(ctx context.Context, product *entity.Product, created bool) {
	p.publish(ctx, pkgEvents.ProductUpserted, map[string]interface{}{
		"product_id":  product.Id,
		"name":        product.Name,
		"category":    string(product.Category),
		"price":       product.Price.StringFixed(2),
		"stock":       product.Stock,
		"created":     created,
		"version":     product.Version,
		"entity_type": "product",
		"entity_id":   product.Id,
	})
}

func (p *BusPublisher) PublishProductDeleted(ctx context.Context, productId string) {
	p.publish(ctx, pkgEvents.ProductDeleted, map[string]interface{}{
		"product_id":  productId,
		"entity_type": "product",
		"entity_id":   productId,
	})
}

func (p *BusPublisher) PublishStockUpdated(ctx context.Context, productId string, previous, current int) {
	p.publish(ctx, pkgEvents.StockUpdated, map[string]interface{}{
		"product_id":     productId,
		"previous_stock": previous,
		"stock":          current,
		"low_stock":      current <= entity.LowStockThreshold,
		"entity_type":    "product",
		"entity_id":      productId,
	})
}

func (p *BusPublisher) PublishImageUpdated(ctx context.Context, productId, image string) {
	p.publish(ctx, pkgEvents.ImageUpdated, map[string]interface{}{
		"product_id":  productId,
		"image":       image,
		"entity_type": "product",
		"entity_id":   productId,
	})
}

func (p *BusPublisher) PublishReviewAdded(ctx context.Context, product *entity.Product, rating int) {
	p.publish(ctx, pkgEvents.ReviewAdded, map[string]interface{}{
		"product_id":   product.Id,
		"rating":       rating,
		"average":      product.Rating,
		"review_count": product.ReviewCount,
		"entity_type":  "product",
		"entity_id":    product.Id,
	})
}
