package seed

import "nextgear/internal/domain"

// Products returns the initial catalog used until the admin curates their
// own, in display order.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Nike Dunk Low Retro",
			PriceCents:  1499000,
			Image:       "https://picsum.photos/400/400?random=1",
			Description: "Classic panda colorway, authentic verification included.",
			Category:    "Sneakers",
			InStock:     true,
		},
		{
			ID:          "2",
			Name:        "Supreme Box Logo Tee",
			PriceCents:  1250000,
			Image:       "https://picsum.photos/400/400?random=2",
			Description: "FW23 Collection, Size L, White.",
			Category:    "Clothing",
			InStock:     true,
		},
		{
			ID:          "3",
			Name:        "Yeezy Slide Pure",
			PriceCents:  899000,
			Image:       "https://picsum.photos/400/400?random=3",
			Description: "Softest foam slides, Size 10 US.",
			Category:    "Sneakers",
			InStock:     false,
		},
		{
			ID:          "4",
			Name:        "PS5 Digital Edition",
			PriceCents:  4500000,
			Image:       "https://picsum.photos/400/400?random=4",
			Description: "Brand new, sealed. Japanese version.",
			Category:    "Electronics",
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Stone Island Hoodie",
			PriceCents:  2200000,
			Image:       "https://picsum.photos/400/400?random=5",
			Description: "Garment dyed, black, patch on arm.",
			Category:    "Clothing",
			InStock:     true,
		},
	}
}
