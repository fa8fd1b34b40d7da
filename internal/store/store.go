package store

import (
	"fmt"
	"sync"

	"nextgear/internal/cart"
	"nextgear/internal/catalog"
	"nextgear/internal/domain"
	"nextgear/internal/ledger"
)

// Notifier is the outbound messaging collaborator. The store hands it order
// data after the fact; it performs whatever I/O it wants on its own.
type Notifier interface {
	OrderPlaced(order domain.Order)
	OrderProcessed(order domain.Order)
}

// Snapshot is the consistent, read-only view delivered to observers after
// every mutation. All slices are independent copies.
type Snapshot struct {
	Products []domain.Product  `json:"products"`
	Cart     []domain.CartLine `json:"cart"`
	Orders   []domain.Order    `json:"orders"`
	Identity *domain.Identity  `json:"identity,omitempty"`
}

// Store is the single coordination surface over catalog, ledger and the
// per-session carts. One mutex serializes every operation, so cross-component
// effects (order confirmation removing catalog listings, order placement
// clearing the cart) are single critical sections: no reader ever observes a
// partially applied state.
type Store struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	carts    map[string]*cart.Cart
	notifier Notifier
}

func New(cat *catalog.Catalog, led *ledger.Ledger) *Store {
	return &Store{
		catalog: cat,
		ledger:  led,
		carts:   make(map[string]*cart.Cart),
	}
}

// SetNotifier installs the messaging collaborator. Pass nil to disable.
func (s *Store) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// Bind scopes the store to one actor and their cart. A nil identity yields an
// unauthenticated session: reads are served, every mutation is rejected with
// domain.ErrPrecondition until an identity is resolved.
func (s *Store) Bind(identity *domain.Identity) *Session {
	sess := &Session{store: s}
	if identity == nil || identity.Username == "" {
		return sess
	}
	id := *identity
	sess.identity = &id

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id.Username]
	if !ok {
		c = cart.New()
		s.carts[id.Username] = c
	}
	sess.cart = c
	return sess
}

// Session exposes the documented store operations for one bound identity.
type Session struct {
	store    *Store
	identity *domain.Identity
	cart     *cart.Cart

	obsMu     sync.Mutex
	observers []func(Snapshot)
}

// Subscribe registers an observer that receives a consistent snapshot after
// every successful mutation made through this session.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Session) publish(snap Snapshot) {
	s.obsMu.Lock()
	observers := make([]func(Snapshot), len(s.observers))
	copy(observers, s.observers)
	s.obsMu.Unlock()
	for _, fn := range observers {
		fn(snap)
	}
}

// snapshotLocked builds the session view. Callers hold the store mutex.
func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{Products: s.store.catalog.List()}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
		snap.Cart = s.cart.Lines()
		if id.IsAdmin {
			snap.Orders = s.store.ledger.All()
		} else {
			snap.Orders = s.store.ledger.ListForUser(id.Username)
		}
	}
	return snap
}

func (s *Session) gate() error {
	if s.identity == nil {
		return fmt.Errorf("no identity resolved: %w", domain.ErrPrecondition)
	}
	return nil
}

// Identity returns a copy of the bound identity, or nil when unauthenticated.
func (s *Session) Identity() *domain.Identity {
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// IsAdmin is false for unauthenticated sessions.
func (s *Session) IsAdmin() bool {
	return s.identity != nil && s.identity.IsAdmin
}

func (s *Session) Snapshot() Snapshot {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) Products() []domain.Product {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.catalog.List()
}

func (s *Session) SearchProducts(query, category string, inStockOnly bool) []domain.Product {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.catalog.Search(query, category, inStockOnly)
}

func (s *Session) Categories() []string {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.catalog.Categories()
}

func (s *Session) Product(id string) (domain.Product, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.catalog.Get(id)
}

// Cart returns the session's cart lines. Empty for unauthenticated sessions.
func (s *Session) Cart() []domain.CartLine {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.cart == nil {
		return nil
	}
	return s.cart.Lines()
}

func (s *Session) CartTotal() int64 {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.cart == nil {
		return 0
	}
	return s.cart.TotalCents()
}

// Orders returns the bound user's order history, newest first.
func (s *Session) Orders() []domain.Order {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if s.identity == nil {
		return nil
	}
	return s.store.ledger.ListForUser(s.identity.Username)
}

func (s *Session) PendingOrders() []domain.Order {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.store.ledger.ListPending()
}

func (s *Session) AddToCart(p domain.Product) error {
	if err := s.gate(); err != nil {
		return err
	}
	s.store.mu.Lock()
	s.cart.Add(p)
	snap := s.snapshotLocked()
	s.store.mu.Unlock()
	s.publish(snap)
	return nil
}

// AddToCartByID looks the product up in the catalog and adds it in the same
// critical section.
func (s *Session) AddToCartByID(productID string) error {
	if err := s.gate(); err != nil {
		return err
	}
	s.store.mu.Lock()
	p, err := s.store.catalog.Get(productID)
	if err != nil {
		s.store.mu.Unlock()
		return err
	}
	s.cart.Add(p)
	snap := s.snapshotLocked()
	s.store.mu.Unlock()
	s.publish(snap)
	return nil
}

func (s *Session) RemoveFromCart(productID string) error {
	if err := s.gate(); err != nil {
		return err
	}
	s.store.mu.Lock()
	s.cart.Remove(productID)
	snap := s.snapshotLocked()
	s.store.mu.Unlock()
	s.publish(snap)
	return nil
}

func (s *Session) ClearCart() error {
	if err := s.gate(); err != nil {
		return err
	}
	s.store.mu.Lock()
	s.cart.Clear()
	snap := s.snapshotLocked()
	s.store.mu.Unlock()
	s.publish(snap)
	return nil
}

func (s *Session) AddProduct(p domain.Product) error {
	if err := s.gate(); err != nil {
		return err
	}
	s.store.mu.Lock()
	if err := s.store.catalog.Add(p); err != nil {
		s.store.mu.Unlock()
		return err
	}
	snap := s.snapshotLocked()
	s.store.mu.Unlock()
	s.publish(snap)
	return nil
}

func (s *Session) RemoveProduct(productID string) error {
	if err := s.gate(); err != nil {
		return err
	}
	s.store.mu.Lock()
	s.store.catalog.Remove(productID)
	snap := s.snapshotLocked()
	s.store.mu.Unlock()
	s.publish(snap)
	return nil
}

// PlaceOrder materializes the cart into a PENDING order and clears the cart
// as one atomic step: the order is never observable alongside a stale cart,
// and a failed placement leaves the cart untouched.
func (s *Session) PlaceOrder() (domain.Order, error) {
	if err := s.gate(); err != nil {
		return domain.Order{}, err
	}
	s.store.mu.Lock()
	order, err := s.store.ledger.Place(s.identity, s.cart.Lines())
	if err != nil {
		s.store.mu.Unlock()
		return domain.Order{}, err
	}
	s.cart.Clear()
	snap := s.snapshotLocked()
	notifier := s.store.notifier
	s.store.mu.Unlock()

	s.publish(snap)
	if notifier != nil {
		notifier.OrderPlaced(order)
	}
	return order, nil
}

// ProcessOrder resolves a pending order. The status transition and the
// catalog effect happen inside one critical section.
func (s *Session) ProcessOrder(orderID string, approved bool) (domain.Order, error) {
	if err := s.gate(); err != nil {
		return domain.Order{}, err
	}
	s.store.mu.Lock()
	order, err := s.store.ledger.Process(orderID, approved)
	if err != nil {
		s.store.mu.Unlock()
		return domain.Order{}, err
	}
	snap := s.snapshotLocked()
	notifier := s.store.notifier
	s.store.mu.Unlock()

	s.publish(snap)
	if notifier != nil {
		notifier.OrderProcessed(order)
	}
	return order, nil
}
