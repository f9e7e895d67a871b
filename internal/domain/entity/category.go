package entity

import "time"

type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	IconID    *string   `json:"-"`
	Icon      *Asset    `json:"icon,omitempty"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
