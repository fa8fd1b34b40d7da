package cart

import "nextgear/internal/domain"

// Cart holds one session's selected items. At most one line exists per
// product id; repeated adds increment the quantity. Lines carry a value copy
// of the product taken at add time, so the cart is immune to later catalog
// mutations.
//
// Like the catalog, the cart relies on the store façade for serialization.
type Cart struct {
	lines []domain.CartLine
}

func New() *Cart {
	return &Cart{}
}

// Add merges the product into the cart: an existing line's quantity grows by
// one, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(p domain.Product) {
	for i := range c.lines {
		if c.lines[i].ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: 1})
}

// Remove drops the line for the given product id, if any.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns an independent copy of the cart contents.
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalCents is computed on demand so it always reflects current contents.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.TotalCents()
	}
	return total
}
