package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCanceled  OrderStatus = "CANCELED"
)

// Terminal reports whether the status admits no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderConfirmed || s == OrderCanceled
}

// Order is a frozen snapshot of a cart at placement time. Items and
// TotalCents are never recomputed, even if catalog prices change later.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	Username   string      `json:"username"`
	Items      []CartLine  `json:"items"`
	TotalCents int64       `json:"totalCents"`
	Status     OrderStatus `json:"status"`
	Date       time.Time   `json:"date"`
}

// ProductIDs returns the distinct product ids across the order's items,
// preserving first-occurrence order.
func (o Order) ProductIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		ids = append(ids, item.ID)
	}
	return ids
}
