package model

import "time"

// Archive is a stored JSON snapshot of a rendered screen.
// This is a pure domain model with no database-specific dependencies or tags.
type Archive struct {
	ID          string    `json:"id"`
	Screen      string    `json:"screen"`
	SubjectID   string    `json:"subject_id,omitempty"`
	Title       string    `json:"title"`
	StoragePath string    `json:"storage_path"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
	DownloadURL string    `json:"download_url,omitempty"`
}

