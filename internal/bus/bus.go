package bus

import (
	"strings"
	"sync"
)

// Bus is an in-process publish/subscribe event bus with namespace filtering.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]*subscription
	next int
}

type subscription struct {
	namespace string
	userID    string
	ch        chan Event
}

func New() *Bus {
	return &Bus{
		subs: make(map[int]*subscription),
	}
}

// Publish delivers evt to every subscriber whose namespace prefixes evt.Kind
// and whose user filter (if any) matches evt.UserID. A nil Bus drops events.
func (b *Bus) Publish(evt Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !strings.HasPrefix(evt.Kind, sub.namespace) {
			continue
		}
		if sub.userID != "" && sub.userID != evt.UserID {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			// Slow subscriber; drop rather than block the publishing store.
		}
	}
}

// Subscribe returns a channel of events matching namespace for all users.
func (b *Bus) Subscribe(namespace string, bufSize int) (<-chan Event, func()) {
	return b.SubscribeUser(namespace, "", bufSize)
}

// SubscribeUser is Subscribe restricted to events of one user. An empty
// userID matches every user.
func (b *Bus) SubscribeUser(namespace, userID string, bufSize int) (<-chan Event, func()) {
	ch := make(chan Event, bufSize)
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = &subscription{namespace: namespace, userID: userID, ch: ch}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}
