package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUploaded  = "uploaded"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// Image is a gallery entry. It is rebuilt from the storage directory on
// every read; UploadedAt is the file's modification time.
type Image struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Upload is a row of the upload journal.
type Upload struct {
	Filename      string    `db:"filename"`
	OriginalName  string    `db:"original_name"`
	ContentType   string    `db:"content_type"`
	Size          int64     `db:"size_bytes"`
	ClientAddr    string    `db:"client_addr"`
	Status        string    `db:"status"`
	ThumbnailPath string    `db:"thumbnail_path"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// UploadEvent is published after an image has been written to disk.
type UploadEvent struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
