package store

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means no connection string was supplied at startup.
	ErrNotConfigured = errors.New("store not configured")
	// ErrUnavailable means the connection attempt at startup failed.
	ErrUnavailable = errors.New("store unavailable")
)

// Status is the connectivity state of a store, decided once at startup and
// never mutated by request handlers.
type Status int

const (
	StatusUnconfigured Status = iota
	StatusUnavailable
	StatusConnected
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "Connected"
	case StatusUnavailable:
		return "Unavailable"
	default:
		return "Unconfigured"
	}
}

// Document is one stored record in wire form.
type Document = map[string]any

// Store performs create/read operations against named collections of a
// document database. Implementations assign a unique identifier on insert and
// return records in store-native order.
type Store interface {
	// Status reports the connectivity state decided at startup.
	Status() Status

	// StatusDetail returns the reason for a non-connected status,
	// best-effort; "" when connected or when no reason was recorded.
	StatusDetail() string

	// DatabaseName returns the name of the backing database, or "" if the
	// store was never configured.
	DatabaseName() string

	// Insert persists one record and returns its new identifier.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Find returns all records matching the exact-match filter. An empty
	// filter matches every record. No ordering is guaranteed.
	Find(ctx context.Context, collection string, filter Document) ([]Document, error)

	// Count returns the number of records matching the filter.
	Count(ctx context.Context, collection string, filter Document) (int64, error)

	// CollectionNames returns up to limit existing collection names,
	// best-effort, for diagnostics.
	CollectionNames(ctx context.Context, limit int) ([]string, error)
}
