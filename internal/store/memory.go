package store

import (
	"context"
	"encoding/json"
	"maps"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Memory is an in-process Store used by tests and for running the API without
// a database. It mirrors the Mongo behavior: identifiers are generated on
// insert and stored under "_id", and records come back in insertion order.
type Memory struct {
	mu          sync.RWMutex
	status      Status
	name        string
	collections map[string][]Document
}

// NewMemory creates a connected in-memory store.
func NewMemory(name string) *Memory {
	return &Memory{
		status:      StatusConnected,
		name:        name,
		collections: make(map[string][]Document),
	}
}

// NewMemoryWithStatus creates an in-memory store in the given connectivity
// state. Non-connected stores reject every data operation, like Mongo does.
func NewMemoryWithStatus(status Status) *Memory {
	m := NewMemory("")
	m.status = status
	return m
}

func (m *Memory) Status() Status {
	return m.status
}

func (m *Memory) StatusDetail() string {
	return ""
}

func (m *Memory) DatabaseName() string {
	return m.name
}

func (m *Memory) ready() error {
	switch m.status {
	case StatusConnected:
		return nil
	case StatusUnavailable:
		return ErrUnavailable
	default:
		return ErrNotConfigured
	}
}

func (m *Memory) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if err := m.ready(); err != nil {
		return "", err
	}

	// Round-trip through JSON so structs and maps land in the same wire form
	// a document database would store.
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrapf(err, "encode document for %s", collection)
	}
	var stored Document
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", errors.Wrapf(err, "decode document for %s", collection)
	}

	id := uuid.New().String()
	stored["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], stored)
	return id, nil
}

func (m *Memory) Find(ctx context.Context, collection string, filter Document) ([]Document, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := []Document{}
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, maps.Clone(doc))
		}
	}
	return docs, nil
}

func (m *Memory) Count(ctx context.Context, collection string, filter Document) (int64, error) {
	if err := m.ready(); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, doc := range m.collections[collection] {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func (m *Memory) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if err := m.ready(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func matches(doc, filter Document) bool {
	for key, want := range filter {
		if doc[key] != want {
			return false
		}
	}
	return true
}
