package entity

import "time"

type Service struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Status           Status    `json:"status"`
	IconID           *string   `json:"-"`
	Icon             *Asset    `json:"icon,omitempty"`
	PackageID        *string   `json:"package_id,omitempty"`
	CategoryID       *string   `json:"category_id,omitempty"`
	AuthorID         string    `json:"author_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
