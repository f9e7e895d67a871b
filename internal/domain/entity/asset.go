package entity

import "time"

// Asset is a stored reference to a remote-hosted binary object (image or
// file) together with the storage key needed to delete it later.
type Asset struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	StorageKey string    `json:"public_id"`
	Folder     string    `json:"folder,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
