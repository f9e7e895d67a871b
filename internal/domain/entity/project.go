package entity

import "time"

// Project owns two independently managed, ordered asset collections:
// showcase images and downloadable files.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CategoryID  string    `json:"category_id"`
	AuthorID    string    `json:"author_id"`
	Images      []Asset   `json:"images"`
	Files       []Asset   `json:"files"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
