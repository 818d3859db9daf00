package model

import "time"

// DocumentStatus tracks where a document is in its processing lifecycle.
type DocumentStatus string

const (
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

// Valid reports whether s is one of the known statuses.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Document represents a stored file in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, analytics) without coupling to persistence.
// Records are immutable once fetched; status transitions go through the repository.
type Document struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	StoragePath string         `json:"storage_path"`
	Size        int64          `json:"size"`
	ContentType string         `json:"content_type"`
	Status      DocumentStatus `json:"status"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	CreatedAt   time.Time      `json:"created_at"`
}

// EffectiveTime returns the timestamp aggregations bucket this document
// under: UploadedAt when set, otherwise CreatedAt. The second return value
// is false when neither is set; such documents are excluded from aggregation.
func (d Document) EffectiveTime() (time.Time, bool) {
	if !d.UploadedAt.IsZero() {
		return d.UploadedAt, true
	}
	if !d.CreatedAt.IsZero() {
		return d.CreatedAt, true
	}
	return time.Time{}, false
}
