package store

import (
	"time"
)

// Sort keys understood by the catalog listing.
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByRating    = "rating"

	CategoryAll = "All"
)

// Filters are the catalog selections the shopper made last.
type Filters struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	Sort     string `json:"sort"`
}

// Flash holds one-shot UI state. It is handed out once and then cleared.
type Flash struct {
	PurchaseSuccessful bool   `json:"purchase_successful"`
	LastOrderId        string `json:"last_order_id,omitempty"`
	Message            string `json:"message,omitempty"`
}

func (f Flash) IsZero() bool {
	return !f.PurchaseSuccessful && f.LastOrderId == "" && f.Message == ""
}

// Session is the per-visitor state: cart, current filters and flash flags.
// It is loaded at the start of a request and written back at the end.
type Session struct {
	ID         string    `json:"id"`
	Cart       Cart      `json:"cart"`
	Filters    Filters   `json:"filters"`
	Flash      Flash     `json:"flash"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		Cart:       NewCart(),
		Filters:    Filters{Category: CategoryAll, Sort: SortByName},
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// TakeFlash returns the current flash and resets it.
func (s *Session) TakeFlash() Flash {
	f := s.Flash
	s.Flash = Flash{}
	return f
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Cart = s.Cart.Clone()
	return &c
}
