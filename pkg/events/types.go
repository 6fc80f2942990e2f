package events

import "time"

const (
	OrderPlaced        = "ORDER_PLACED"
	OrderCancelled     = "ORDER_CANCELLED"
	OrderStatusChanged = "ORDER_STATUS_CHANGED"
	ProductUpserted    = "PRODUCT_UPSERTED"
	ProductDeleted     = "PRODUCT_DELETED"
	StockUpdated       = "STOCK_UPDATED"
	ImageUpdated       = "IMAGE_UPDATED"
	ReviewAdded        = "REVIEW_ADDED"
)

// Envelope is the wire form used on the in-process bus and the websocket feed.
type Envelope struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func ToEnvelope(e Event) Envelope {
	return Envelope{Type: e.EventType(), Data: e.Payload(), OccurredAt: e.Timestamp()}
}

func (e Envelope) Event() BaseEvent {
	return BaseEvent{Type: e.Type, Data: e.Data, OccurredAt: e.OccurredAt}
}
