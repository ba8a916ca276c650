package realtime

import (
	"log"
	"strings"
	"sync"
)

// Subscriber is a live notification sink. *Conn satisfies it; tests inject
// fakes.
type Subscriber interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Event is the wire envelope every published notification is wrapped in.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NotificationHub tracks live subscriber connections per company channel and
// multicasts events to all of them. Delivery is best-effort at-most-once:
// a failed write prunes the subscriber, nothing is buffered or replayed.
type NotificationHub struct {
	name string
	mu   sync.RWMutex
	subs map[string]map[Subscriber]struct{}
}

// NewNotificationHub returns an empty hub. name tags log lines ("web",
// "desktop") so the two audiences stay distinguishable.
func NewNotificationHub(name string) *NotificationHub {
	return &NotificationHub{
		name: name,
		subs: make(map[string]map[Subscriber]struct{}),
	}
}

func channelKey(companyID string) string {
	return strings.ToLower(strings.TrimSpace(companyID))
}

func (h *NotificationHub) Subscribe(companyID string, sub Subscriber) {
	key := channelKey(companyID)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[Subscriber]struct{})
	}
	h.subs[key][sub] = struct{}{}
	log.Printf("[ws][%s][subscribe] company=%s total=%d", h.name, key, len(h.subs[key]))
}

// Unsubscribe is idempotent; the channel entry disappears with its last
// subscriber so the map never accumulates empty sets.
func (h *NotificationHub) Unsubscribe(companyID string, sub Subscriber) {
	key := channelKey(companyID)
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.subs[key]
	if !ok {
		return
	}
	if _, ok := conns[sub]; !ok {
		return
	}
	delete(conns, sub)
	if len(conns) == 0 {
		delete(h.subs, key)
	}
	_ = sub.Close()
	log.Printf("[ws][%s][unsubscribe] company=%s remaining=%d", h.name, key, len(conns))
}

// Publish multicasts {event, data} to every current subscriber of the
// company channel. It never fails: an empty channel is a logged no-op and a
// subscriber whose write errors is unsubscribed after the broadcast pass.
func (h *NotificationHub) Publish(companyID, event string, data interface{}) {
	key := channelKey(companyID)

	// Snapshot under read lock: the active set must never be mutated while
	// iterated, and a failing write must not hold the lock.
	h.mu.RLock()
	targets := make([]Subscriber, 0, len(h.subs[key]))
	for sub := range h.subs[key] {
		targets = append(targets, sub)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		log.Printf("[ws][%s][publish] no subscribers company=%s event=%s", h.name, key, event)
		return
	}

	payload := Event{Event: event, Data: data}
	var dead []Subscriber
	for _, sub := range targets {
		if err := sub.WriteJSON(payload); err != nil {
			log.Printf("[ws][%s][publish] send failed company=%s event=%s err=%v", h.name, key, event, err)
			dead = append(dead, sub)
		}
	}
	for _, sub := range dead {
		h.Unsubscribe(key, sub)
	}
	log.Printf("[ws][%s][publish] company=%s event=%s delivered=%d pruned=%d",
		h.name, key, event, len(targets)-len(dead), len(dead))
}

// SubscriberCount reports the live subscriber count of a channel.
func (h *NotificationHub) SubscriberCount(companyID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[channelKey(companyID)])
}

// Broadcaster fans one publish out to every audience hub (web + desktop). A
// failure in one audience never blocks the other: Publish absorbs errors.
type Broadcaster struct {
	hubs []*NotificationHub
}

func NewBroadcaster(hubs ...*NotificationHub) *Broadcaster {
	return &Broadcaster{hubs: hubs}
}

func (b *Broadcaster) Publish(companyID, event string, data interface{}) {
	for _, h := range b.hubs {
		h.Publish(companyID, event, data)
	}
}
