package domain

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	InStock     bool   `json:"inStock"`
}
