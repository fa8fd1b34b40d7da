package domain

// CartLine is a product snapshot plus a quantity. The product fields are
// copied by value at add time, so later catalog changes never reach a cart.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) TotalCents() int64 {
	return l.PriceCents * int64(l.Quantity)
}
