package entity

import "time"

type Package struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PriceBDT     float64   `json:"price_bdt"`
	PriceUSD     float64   `json:"price_usd"`
	DeliveryTime string    `json:"delivery_time"`
	RevisionTime int       `json:"revision_time"`
	Features     []string  `json:"features"`
	Status       Status    `json:"status"`
	IconID       *string   `json:"-"`
	Icon         *Asset    `json:"icon,omitempty"`
	CategoryID   string    `json:"category_id"`
	AuthorID     string    `json:"author_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
