// Package history keeps the debates generated during one client session.
// Nothing here touches disk; the list is gone when the process exits.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID        uuid.UUID `json:"id"`
	Topic     string    `json:"topic"`
	Result    string    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

type History struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

func New() *History {
	return &History{now: time.Now}
}

func (h *History) Append(topic, result string) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	e := Entry{
		ID:        uuid.New(),
		Topic:     topic,
		Result:    result,
		CreatedAt: h.now(),
	}
	h.entries = append(h.entries, e)
	return e
}

// Entries returns a copy in submission order.
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Topics() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, 0, len(h.entries))
	for _, e := range h.entries {
		out = append(out, e.Topic)
	}
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
