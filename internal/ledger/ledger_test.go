package ledger

import (
	"errors"
	"testing"
	"time"

	"nextgear/internal/domain"
)

type stubInventory struct {
	removed [][]string
}

func (s *stubInventory) RemoveAll(ids []string) {
	s.removed = append(s.removed, ids)
}

func buyer() *domain.Identity {
	return &domain.Identity{Username: "reseller_king"}
}

func line(id string, price int64, qty int) domain.CartLine {
	return domain.CartLine{Product: domain.Product{ID: id, Name: id, PriceCents: price}, Quantity: qty}
}

func TestPlaceCreatesPendingOrder(t *testing.T) {
	l := New(&stubInventory{})
	order, err := l.Place(buyer(), []domain.CartLine{line("p1", 100, 2), line("p2", 50, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("expected PENDING, got %s", order.Status)
	}
	if order.TotalCents != 250 {
		t.Fatalf("expected total 250, got %d", order.TotalCents)
	}
	if order.UserID != "reseller_king" || order.Username != "reseller_king" {
		t.Fatalf("unexpected identity snapshot: %+v", order)
	}
	if order.ID == "" || order.Date.IsZero() {
		t.Fatalf("order must carry id and timestamp: %+v", order)
	}
	if len(l.All()) != 1 {
		t.Fatalf("ledger must contain the placed order")
	}
}

func TestPlaceRequiresIdentityAndItems(t *testing.T) {
	l := New(&stubInventory{})
	if _, err := l.Place(nil, []domain.CartLine{line("p1", 100, 1)}); !errors.Is(err, domain.ErrPrecondition) {
		t.Fatalf("expected precondition error for absent identity, got %v", err)
	}
	if _, err := l.Place(buyer(), nil); !errors.Is(err, domain.ErrPrecondition) {
		t.Fatalf("expected precondition error for empty cart, got %v", err)
	}
	if len(l.All()) != 0 {
		t.Fatalf("failed placements must leave the ledger unchanged")
	}
}

func TestPlaceFreezesItems(t *testing.T) {
	l := New(&stubInventory{})
	lines := []domain.CartLine{line("p1", 100, 1)}
	order, err := l.Place(buyer(), lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines[0].PriceCents = 999
	lines[0].Quantity = 42
	got := l.All()[0]
	if got.Items[0].PriceCents != 100 || got.Items[0].Quantity != 1 {
		t.Fatalf("order items must be an independent copy: %+v", got.Items)
	}
	if order.TotalCents != 100 {
		t.Fatalf("total must be frozen at placement: %d", order.TotalCents)
	}
}

func TestPlaceOrdersAreNewestFirstWithUniqueIDs(t *testing.T) {
	l := New(&stubInventory{})
	first, _ := l.Place(buyer(), []domain.CartLine{line("p1", 100, 1)})
	second, _ := l.Place(buyer(), []domain.CartLine{line("p2", 100, 1)})
	if first.ID == second.ID {
		t.Fatalf("rapid placements must still get unique ids")
	}
	all := l.All()
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("ledger must be most recent first: %+v", all)
	}
}

func TestProcessApprovedRemovesListings(t *testing.T) {
	inv := &stubInventory{}
	l := New(inv)
	// duplicate product across items collapses to one removal
	order, _ := l.Place(buyer(), []domain.CartLine{line("p1", 100, 2), line("p2", 50, 1)})

	got, err := l.Process(order.ID, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.OrderConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", got.Status)
	}
	if len(inv.removed) != 1 {
		t.Fatalf("expected exactly one inventory call, got %d", len(inv.removed))
	}
	ids := inv.removed[0]
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Fatalf("unexpected removal set: %v", ids)
	}
}

func TestProcessRejectedLeavesInventoryAlone(t *testing.T) {
	inv := &stubInventory{}
	l := New(inv)
	order, _ := l.Place(buyer(), []domain.CartLine{line("p1", 100, 1)})

	got, err := l.Process(order.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.OrderCanceled {
		t.Fatalf("expected CANCELED, got %s", got.Status)
	}
	if len(inv.removed) != 0 {
		t.Fatalf("rejection must not touch the inventory")
	}
}

func TestProcessUnknownOrder(t *testing.T) {
	l := New(&stubInventory{})
	if _, err := l.Process("missing", true); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProcessIsOneShot(t *testing.T) {
	inv := &stubInventory{}
	l := New(inv)
	order, _ := l.Place(buyer(), []domain.CartLine{line("p1", 100, 1)})

	if _, err := l.Process(order.ID, true); err != nil {
		t.Fatalf("first process failed: %v", err)
	}
	_, err := l.Process(order.ID, false)
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected invalid state on second process, got %v", err)
	}
	if got := l.All()[0].Status; got != domain.OrderConfirmed {
		t.Fatalf("second process must not change the order, got %s", got)
	}
	if len(inv.removed) != 1 {
		t.Fatalf("second process must not touch the inventory again")
	}
}

func TestListPendingFiltersByStatus(t *testing.T) {
	l := New(&stubInventory{})
	first, _ := l.Place(buyer(), []domain.CartLine{line("p1", 100, 1)})
	second, _ := l.Place(buyer(), []domain.CartLine{line("p2", 100, 1)})
	third, _ := l.Place(buyer(), []domain.CartLine{line("p3", 100, 1)})
	l.Process(second.ID, true)

	pending := l.ListPending()
	if len(pending) != 2 || pending[0].ID != third.ID || pending[1].ID != first.ID {
		t.Fatalf("unexpected pending orders: %+v", pending)
	}
}

func TestListForUserSortsNewestFirst(t *testing.T) {
	l := New(&stubInventory{})
	l.now = func() time.Time { return time.UnixMilli(3000) }
	newest, _ := l.Place(buyer(), []domain.CartLine{line("p1", 100, 1)})
	l.now = func() time.Time { return time.UnixMilli(1000) }
	oldest, _ := l.Place(buyer(), []domain.CartLine{line("p2", 100, 1)})
	l.now = func() time.Time { return time.UnixMilli(2000) }
	middle, _ := l.Place(buyer(), []domain.CartLine{line("p3", 100, 1)})
	l.Place(&domain.Identity{Username: "someone_else"}, []domain.CartLine{line("p4", 100, 1)})

	got := l.ListForUser("reseller_king")
	if len(got) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(got))
	}
	if got[0].ID != newest.ID || got[1].ID != middle.ID || got[2].ID != oldest.ID {
		t.Fatalf("history must be sorted by date descending: %+v", got)
	}
}
