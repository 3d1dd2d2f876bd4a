package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used for tests and local development.
// It mirrors the snapshot-notification behavior of the hosted store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[Collection]map[string]map[string]any
	hub  *snapshotHub

	now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// SetNow overrides the creation-timestamp clock. Tests use it to control
// createdAt ordering.
func (s *MemoryStore) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[Collection]map[string]map[string]any),
		hub:  newSnapshotHub(),
		now:  time.Now,
	}
}

// List returns the current contents of a collection, ordered by id for
// deterministic reads.
func (s *MemoryStore) List(ctx context.Context, col Collection) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(col), nil
}

func (s *MemoryStore) snapshotLocked(col Collection) []Document {
	docs := make([]Document, 0, len(s.data[col]))
	for id, fields := range s.data[col] {
		docs = append(docs, Document{ID: id, Fields: copyFields(fields)})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}

// CreateOrReplace upserts a whole document by id.
func (s *MemoryStore) CreateOrReplace(ctx context.Context, col Collection, id string, fields map[string]any) error {
	s.mu.Lock()
	if s.data[col] == nil {
		s.data[col] = make(map[string]map[string]any)
	}
	s.data[col][id] = copyFields(fields)
	snapshot := s.snapshotLocked(col)
	s.mu.Unlock()

	s.hub.publish(col, snapshot)
	return nil
}

// Patch updates only the given fields of an existing document.
func (s *MemoryStore) Patch(ctx context.Context, col Collection, id string, fields map[string]any) error {
	s.mu.Lock()
	existing, ok := s.data[col][id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("docstore: patch %s/%s: %w", col, id, ErrNotFound)
	}
	for k, v := range fields {
		existing[k] = v
	}
	snapshot := s.snapshotLocked(col)
	s.mu.Unlock()

	s.hub.publish(col, snapshot)
	return nil
}

// Delete removes a document by id.
func (s *MemoryStore) Delete(ctx context.Context, col Collection, id string) error {
	s.mu.Lock()
	if _, ok := s.data[col][id]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("docstore: delete %s/%s: %w", col, id, ErrNotFound)
	}
	delete(s.data[col], id)
	snapshot := s.snapshotLocked(col)
	s.mu.Unlock()

	s.hub.publish(col, snapshot)
	return nil
}

// CreateWithGeneratedID inserts a document under a fresh id with a createdAt
// stamp.
func (s *MemoryStore) CreateWithGeneratedID(ctx context.Context, col Collection, fields map[string]any) (string, error) {
	id := uuid.NewString()
	stamped := copyFields(fields)
	stamped["createdAt"] = s.now().Unix()

	s.mu.Lock()
	if s.data[col] == nil {
		s.data[col] = make(map[string]map[string]any)
	}
	s.data[col][id] = stamped
	snapshot := s.snapshotLocked(col)
	s.mu.Unlock()

	s.hub.publish(col, snapshot)
	return id, nil
}

// BatchWrite applies every operation atomically under the store lock.
func (s *MemoryStore) BatchWrite(ctx context.Context, ops []WriteOp) error {
	touched := make(map[Collection]struct{})

	s.mu.Lock()
	for _, op := range ops {
		if s.data[op.Collection] == nil {
			s.data[op.Collection] = make(map[string]map[string]any)
		}
		s.data[op.Collection][op.ID] = copyFields(op.Fields)
		touched[op.Collection] = struct{}{}
	}
	snapshots := make(map[Collection][]Document, len(touched))
	for col := range touched {
		snapshots[col] = s.snapshotLocked(col)
	}
	s.mu.Unlock()

	for col, snapshot := range snapshots {
		s.hub.publish(col, snapshot)
	}
	return nil
}

// Subscribe opens a snapshot stream; the current snapshot arrives first.
func (s *MemoryStore) Subscribe(ctx context.Context, col Collection) (*Subscription, error) {
	sub, ch := s.hub.subscribe(col)

	s.mu.RLock()
	snapshot := s.snapshotLocked(col)
	s.mu.RUnlock()

	// Non-blocking: a mutation racing the subscribe may already have
	// queued a newer snapshot, which wins.
	select {
	case ch <- snapshot:
	default:
	}

	return sub, nil
}

func copyFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
