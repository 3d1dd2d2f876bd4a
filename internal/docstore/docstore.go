// Package docstore provides document persistence for the site's four
// collections. Every mutation republishes a full collection snapshot to all
// open subscriptions; consumers replace local state wholesale rather than
// merging.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Collection names the four document collections.
type Collection string

const (
	CollectionServices  Collection = "services"
	CollectionFAQs      Collection = "faqs"
	CollectionBookings  Collection = "bookings"
	CollectionInquiries Collection = "inquiries"
)

// Collections lists every known collection.
var Collections = []Collection{CollectionServices, CollectionFAQs, CollectionBookings, CollectionInquiries}

// ErrNotFound indicates the requested document does not exist.
var ErrNotFound = errors.New("docstore: document not found")

// Document is one record: its id plus a JSON-shaped field map.
type Document struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// WriteOp is a single create-or-replace inside a batch.
type WriteOp struct {
	Collection Collection
	ID         string
	Fields     map[string]any
}

// Subscription delivers full collection snapshots until canceled. The
// current snapshot is delivered first; afterwards one snapshot arrives per
// observed mutation, coalesced so a slow consumer always sees the latest.
type Subscription struct {
	C      <-chan []Document
	cancel func()
}

// Cancel releases the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Store is the persistence collaborator shared by the public site and the
// admin console.
type Store interface {
	// List returns the current contents of a collection.
	List(ctx context.Context, col Collection) ([]Document, error)
	// CreateOrReplace upserts a whole document by id.
	CreateOrReplace(ctx context.Context, col Collection, id string, fields map[string]any) error
	// Patch updates only the given fields of an existing document.
	Patch(ctx context.Context, col Collection, id string, fields map[string]any) error
	// Delete removes a document by id.
	Delete(ctx context.Context, col Collection, id string) error
	// CreateWithGeneratedID inserts a document under a server-chosen id,
	// stamping a createdAt timestamp, and returns the id.
	CreateWithGeneratedID(ctx context.Context, col Collection, fields map[string]any) (string, error)
	// BatchWrite applies every operation atomically.
	BatchWrite(ctx context.Context, ops []WriteOp) error
	// Subscribe opens a snapshot stream for a collection.
	Subscribe(ctx context.Context, col Collection) (*Subscription, error)
}

// Encode converts a typed record into a document field map.
func Encode(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("docstore: encode: %w", err)
	}
	return fields, nil
}

// Decode converts a document field map back into a typed record.
func Decode(fields map[string]any, out any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("docstore: decode: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("docstore: decode: %w", err)
	}
	return nil
}

// CreatedAt reads the server-assigned creation timestamp from a document,
// falling back to 0 when it has not resolved yet.
func CreatedAt(doc Document) int64 {
	switch v := doc.Fields["createdAt"].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// snapshotHub fans collection snapshots out to subscribers.
type snapshotHub struct {
	mu   sync.Mutex
	subs map[Collection]map[int]chan []Document
	next int
}

func newSnapshotHub() *snapshotHub {
	return &snapshotHub{subs: make(map[Collection]map[int]chan []Document)}
}

func (h *snapshotHub) subscribe(col Collection) (*Subscription, chan []Document) {
	ch := make(chan []Document, 1)

	h.mu.Lock()
	if h.subs[col] == nil {
		h.subs[col] = make(map[int]chan []Document)
	}
	id := h.next
	h.next++
	h.subs[col][id] = ch
	h.mu.Unlock()

	var once sync.Once
	sub := &Subscription{C: ch}
	sub.cancel = func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[col], id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return sub, ch
}

// publish pushes a snapshot to every subscriber, replacing any undelivered
// previous snapshot so the newest emission always wins.
func (h *snapshotHub) publish(col Collection, docs []Document) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[col] {
		select {
		case ch <- docs:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- docs
		}
	}
}

func (h *snapshotHub) hasSubscribers(col Collection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[col]) > 0
}
