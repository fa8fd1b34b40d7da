package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"nextgear/internal/domain"
)

// Inventory is the catalog surface the ledger needs when an order is
// confirmed: the sold listings are removed from sale.
type Inventory interface {
	RemoveAll(ids []string)
}

// Ledger owns the global order queue and its lifecycle:
//
//	(none) --Place--> PENDING --Process(true)--> CONFIRMED
//	                        \--Process(false)-> CANCELED
//
// Both CONFIRMED and CANCELED are terminal. Orders are stored most recent
// first. The ledger is serialized by the store façade together with the
// catalog, so a reader can never observe an order as CONFIRMED while the sold
// listings are still in the catalog.
type Ledger struct {
	inventory Inventory
	orders    []domain.Order

	lastID int64
	now    func() time.Time
}

func New(inventory Inventory) *Ledger {
	return &Ledger{inventory: inventory, now: time.Now}
}

// Place materializes the given cart lines into a new PENDING order and
// prepends it to the ledger. The items and total are frozen at this instant.
func (l *Ledger) Place(identity *domain.Identity, lines []domain.CartLine) (domain.Order, error) {
	if identity == nil || identity.Username == "" {
		return domain.Order{}, fmt.Errorf("identity required to place an order: %w", domain.ErrPrecondition)
	}
	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("cart is empty: %w", domain.ErrPrecondition)
	}

	items := make([]domain.CartLine, len(lines))
	copy(items, lines)

	var total int64
	for _, item := range items {
		total += item.TotalCents()
	}

	now := l.now()
	order := domain.Order{
		ID:         l.nextID(now),
		UserID:     identity.Username,
		Username:   identity.Username,
		Items:      items,
		TotalCents: total,
		Status:     domain.OrderPending,
		Date:       now,
	}
	l.orders = append([]domain.Order{order}, l.orders...)
	return order, nil
}

// Process resolves a PENDING order. Approval transitions it to CONFIRMED and
// removes every product id referenced by its items from the inventory;
// rejection transitions it to CANCELED with no inventory effect. An order can
// be processed exactly once.
func (l *Ledger) Process(orderID string, approved bool) (domain.Order, error) {
	idx := -1
	for i := range l.orders {
		if l.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.Order{}, fmt.Errorf("order %q: %w", orderID, domain.ErrNotFound)
	}
	if l.orders[idx].Status != domain.OrderPending {
		return domain.Order{}, fmt.Errorf("order %q is %s: %w", orderID, l.orders[idx].Status, domain.ErrInvalidState)
	}

	if approved {
		l.orders[idx].Status = domain.OrderConfirmed
		l.inventory.RemoveAll(l.orders[idx].ProductIDs())
	} else {
		l.orders[idx].Status = domain.OrderCanceled
	}
	return l.orders[idx], nil
}

// All returns a copy of every order, most recent first.
func (l *Ledger) All() []domain.Order {
	return copyOrders(l.orders)
}

// ListPending returns the PENDING orders, most recent first.
func (l *Ledger) ListPending() []domain.Order {
	var out []domain.Order
	for _, o := range l.orders {
		if o.Status == domain.OrderPending {
			out = append(out, cloneOrder(o))
		}
	}
	return out
}

// ListForUser returns the given user's order history sorted strictly by
// placement time, newest first, independent of internal storage order.
func (l *Ledger) ListForUser(username string) []domain.Order {
	var out []domain.Order
	for _, o := range l.orders {
		if o.UserID == username {
			out = append(out, cloneOrder(o))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// nextID derives a unique id from the placement time. Placements within the
// same millisecond bump past the last issued id to stay unique.
func (l *Ledger) nextID(now time.Time) string {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return strconv.FormatInt(id, 10)
}

func cloneOrder(o domain.Order) domain.Order {
	items := make([]domain.CartLine, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func copyOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, cloneOrder(o))
	}
	return out
}
