package feed

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/example/ride-board/internal/models"
)

// session wraps one subscriber connection. The mutex serializes writes,
// which gorilla/websocket requires.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *session) send(o models.RideOffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(o)
}

// Hub broadcasts newly posted offers to every connected browser. A failed
// write drops the subscriber; the client is expected to reconnect.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*session]struct{}
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{subs: make(map[*session]struct{}), logger: logger}
}

// Add registers a connection and returns the subscriber count.
func (h *Hub) Add(conn *websocket.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[&session{conn: conn}] = struct{}{}
	return len(h.subs)
}

// Broadcast sends the offer to all subscribers, pruning any that fail.
func (h *Hub) Broadcast(o models.RideOffer) {
	h.mu.RLock()
	targets := make([]*session, 0, len(h.subs))
	for s := range h.subs {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	var dead []*session
	for _, s := range targets {
		if err := s.send(o); err != nil {
			h.logger.Warn("feed send failed, dropping subscriber", "error", err)
			dead = append(dead, s)
		}
	}
	if len(dead) == 0 {
		return
	}
	h.mu.Lock()
	for _, s := range dead {
		_ = s.conn.Close()
		delete(h.subs, s)
	}
	h.mu.Unlock()
}

// Len returns the current subscriber count.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
