package memory

import (
	"sync"

	"techmart-be/internal/entity"
)

// Store is the in-process backing for the catalog and order repositories.
// Table locks guard individual reads and writes; txMu serializes units of work.
type Store struct {
	txMu sync.Mutex

	productsMu sync.RWMutex
	products   map[string]*entity.Product
	catalog    []string // product ids in catalog order

	ordersMu sync.RWMutex
	orders   map[string]*entity.Order
	placed   []string // order ids in placement order
}

func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		orders:   make(map[string]*entity.Order),
	}
}

// NewSeededStore returns a store holding products in the given order.
func NewSeededStore(products []*entity.Product) *Store {
	s := NewStore()
	for _, p := range products {
		s.products[p.Id] = p.Clone()
		s.catalog = append(s.catalog, p.Id)
	}
	return s
}

// Lock and Unlock bracket a unit of work.
func (s *Store) Lock()   { s.txMu.Lock() }
func (s *Store) Unlock() { s.txMu.Unlock() }

type Snapshot struct {
	products map[string]*entity.Product
	catalog  []string
	orders   map[string]*entity.Order
	placed   []string
}

func (s *Store) Snapshot() *Snapshot {
	s.productsMu.RLock()
	products := make(map[string]*entity.Product, len(s.products))
	for id, p := range s.products {
		products[id] = p.Clone()
	}
	catalog := append([]string(nil), s.catalog...)
	s.productsMu.RUnlock()

	s.ordersMu.RLock()
	orders := make(map[string]*entity.Order, len(s.orders))
	for id, o := range s.orders {
		orders[id] = o.Clone()
	}
	placed := append([]string(nil), s.placed...)
	s.ordersMu.RUnlock()

	return &Snapshot{products: products, catalog: catalog, orders: orders, placed: placed}
}

func (s *Store) Restore(snap *Snapshot) {
	s.productsMu.Lock()
	s.products = snap.products
	s.catalog = snap.catalog
	s.productsMu.Unlock()

	s.ordersMu.Lock()
	s.orders = snap.orders
	s.placed = snap.placed
	s.ordersMu.Unlock()
}
