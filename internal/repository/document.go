package repository

import (
	"context"
	"time"

	"docdash/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row
	// (may include values set by the DB).
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns a paginated list of documents and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Document], error)

	// ListUploadedSince returns up to limit documents uploaded at or after
	// since, newest first. This is the bounded raw list the dashboard
	// aggregates locally when the reporting API is unavailable.
	ListUploadedSince(ctx context.Context, since time.Time, limit int) ([]model.Document, error)

	// UpdateStatus moves a document through its processing lifecycle.
	UpdateStatus(ctx context.Context, id string, status model.DocumentStatus) error

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
