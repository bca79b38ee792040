package utils

import (
	"sync"

	"chefly/models"
)

// Hub fans notifications out to connected websocket clients. Subscribers
// that fall behind are dropped rather than blocking the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[uint][]chan *models.Notification
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint][]chan *models.Notification)}
}

// Subscribe registers a channel for a user's notifications. The returned
// cancel func removes the subscription.
func (h *Hub) Subscribe(userID uint) (<-chan *models.Notification, func()) {
	ch := make(chan *models.Notification, 16)

	h.mu.Lock()
	h.subs[userID] = append(h.subs[userID], ch)
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		chans := h.subs[userID]
		for i, c := range chans {
			if c == ch {
				h.subs[userID] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		if len(h.subs[userID]) == 0 {
			delete(h.subs, userID)
		}
	}
	return ch, cancel
}

func (h *Hub) Publish(userID uint, n *models.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[userID] {
		select {
		case ch <- n:
		default:
		}
	}
}
