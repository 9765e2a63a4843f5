package web

import (
	"sync"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

const subscriberBuffer = 4

// Hub fans store snapshots out to event stream subscribers. Subscribers
// share each snapshot and must not modify it.
type Hub struct {
	mu   sync.Mutex
	subs map[chan []domain.Project]struct{}
	log  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		subs: make(map[chan []domain.Project]struct{}),
		log:  logger,
	}
}

// Listen is a store listener. It never blocks: a subscriber whose buffer is
// full loses its oldest pending snapshot.
func (h *Hub) Listen(projects []domain.Project) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- projects:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- projects:
		default:
			h.log.Warn("dropping snapshot for slow subscriber")
		}
	}
}

// Subscribe registers a subscriber. The returned func unregisters it.
func (h *Hub) Subscribe() (<-chan []domain.Project, func()) {
	ch := make(chan []domain.Project, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
		})
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
