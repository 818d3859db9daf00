package storage

import (
	"context"
	"io"
	"time"
)

// Package storage abstracts the S3-compatible object store holding
// document payloads. Implementations stream content and never touch
// local disk.

// PutOptions carries optional upload parameters. Size must be the
// exact byte count when known; -1 lets the backend chunk as it sees
// fit. ContentType feeds the type distribution, so callers should set
// it whenever the upload carries one.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the object store used for document payloads.
type Storage interface {
	// Put uploads an object under the given key from the reader.
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// Get streams an object's content alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL for the object.
	// filename, when non-empty, is offered to the browser as the
	// attachment name instead of the opaque storage key.
	PresignGet(ctx context.Context, key, filename string, expiry time.Duration) (string, error)
}
