package realtime

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/net/websocket"

	"github.com/prophetsmedicine/clinic-platform/internal/admin"
	"github.com/prophetsmedicine/clinic-platform/internal/docstore"
	"github.com/prophetsmedicine/clinic-platform/pkg/logging"
)

// Watcher opens the console's live collection feed for one session.
type Watcher interface {
	Watch(ctx context.Context) (*admin.Feed, error)
}

// Handler streams live collection snapshots to the admin console over
// WebSocket. A client subscribes to one or more collections and receives
// the full collection contents after every change, matching the
// document-store subscription semantics.
type Handler struct {
	watcher Watcher
	logger  *logging.Logger

	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

// OutboundMessage is one frame sent to the console.
type OutboundMessage struct {
	Type       string              `json:"type"` // "snapshot", "error", "pong"
	Collection string              `json:"collection,omitempty"`
	Documents  []docstore.Document `json:"documents,omitempty"`
	Text       string              `json:"text,omitempty"`
}

// InboundMessage is what the console sends; only pings are expected once
// the stream is open.
type InboundMessage struct {
	Type string `json:"type"`
}

// NewHandler creates a snapshot-streaming handler on top of the console
// feed.
func NewHandler(watcher Watcher, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		watcher: watcher,
		logger:  logger,
		conns:   make(map[*websocket.Conn]struct{}),
	}
}

// HandleWebSocket upgrades to WebSocket and streams the requested
// collections. Collections are named in the "collections" query
// parameter, comma separated; absent means all four.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.Handler(func(conn *websocket.Conn) {
		h.serveWS(conn, r)
	}).ServeHTTP(w, r)
}

func parseCollections(raw string) ([]docstore.Collection, bool) {
	if strings.TrimSpace(raw) == "" {
		return docstore.Collections, true
	}
	var cols []docstore.Collection
	for _, name := range strings.Split(raw, ",") {
		col := docstore.Collection(strings.TrimSpace(name))
		known := false
		for _, candidate := range docstore.Collections {
			if col == candidate {
				known = true
			}
		}
		if !known {
			return nil, false
		}
		cols = append(cols, col)
	}
	return cols, true
}

func (h *Handler) serveWS(conn *websocket.Conn, r *http.Request) {
	cols, ok := parseCollections(r.URL.Query().Get("collections"))
	if !ok {
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "error", Text: "unknown collection"})
		return
	}

	feed, err := h.watcher.Watch(r.Context())
	if err != nil {
		h.logger.Error("realtime: watch failed", "error", err)
		_ = websocket.JSON.Send(conn, OutboundMessage{Type: "error", Text: "subscription failed"})
		return
	}
	defer feed.Close()

	// The feed always carries all four collections; only the requested
	// ones are forwarded. The others coalesce in their channel buffers.
	streams := map[docstore.Collection]<-chan []docstore.Document{
		docstore.CollectionServices:  feed.Services,
		docstore.CollectionFAQs:      feed.FAQs,
		docstore.CollectionBookings:  feed.Bookings,
		docstore.CollectionInquiries: feed.Inquiries,
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
	}()

	h.logger.Info("realtime: connection opened", "collections", len(cols))

	// One writer goroutine owns the connection for snapshot frames; the
	// read loop below only answers pings and detects closure.
	done := make(chan struct{})
	var writeMu sync.Mutex
	for _, col := range cols {
		go func(col docstore.Collection, ch <-chan []docstore.Document) {
			for {
				select {
				case docs, open := <-ch:
					if !open {
						return
					}
					writeMu.Lock()
					err := websocket.JSON.Send(conn, OutboundMessage{
						Type:       "snapshot",
						Collection: string(col),
						Documents:  docs,
					})
					writeMu.Unlock()
					if err != nil {
						return
					}
				case <-done:
					return
				}
			}
		}(col, streams[col])
	}
	defer close(done)

	for {
		var msg InboundMessage
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			h.logger.Debug("realtime: connection closed", "error", err)
			return
		}
		if msg.Type == "ping" {
			writeMu.Lock()
			_ = websocket.JSON.Send(conn, OutboundMessage{Type: "pong"})
			writeMu.Unlock()
		}
	}
}

// ActiveConnections reports how many consoles are attached.
func (h *Handler) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
