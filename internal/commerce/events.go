package commerce

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type EventKind string

const (
	EventCartChanged       EventKind = "cart_changed"
	EventPurchasesRecorded EventKind = "purchases_recorded"
)

// Event describes a storage change. ItemCount is the cart size after the
// change, -1 when not applicable.
type Event struct {
	Kind      EventKind
	UserID    string
	CourseID  string
	ItemCount int
}

// Broker is a synchronous in-process publisher. Writers publish after
// persisting; subscribers observe the change on the publishing goroutine.
type Broker struct {
	mu   sync.RWMutex
	next int
	subs map[int]func(Event)
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns its detach func.
func (b *Broker) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *Broker) Publish(e Event) {
	b.mu.RLock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(e)
	}
}

// RegisterCartMetrics attaches a subscriber that keeps Prometheus counters
// in step with storage changes. This replaces the cart badge listener of
// the browser client.
func RegisterCartMetrics(b *Broker, reg *prometheus.Registry) {
	events := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "commerce_storage_events_total",
			Help: "Cart and purchase change events",
		},
		[]string{"kind"},
	)
	cartItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "commerce_last_cart_items",
			Help: "Cart size observed on the most recent cart change",
		},
	)
	reg.MustRegister(events, cartItems)

	b.Subscribe(func(e Event) {
		events.WithLabelValues(string(e.Kind)).Inc()
		if e.Kind == EventCartChanged && e.ItemCount >= 0 {
			cartItems.Set(float64(e.ItemCount))
		}
	})
}

// RegisterEventLogging attaches an audit subscriber.
func RegisterEventLogging(b *Broker, log *zap.Logger) {
	if log == nil {
		return
	}
	b.Subscribe(func(e Event) {
		log.Info("storage event",
			zap.String("kind", string(e.Kind)),
			zap.String("user_id", e.UserID),
			zap.String("course_id", e.CourseID),
			zap.Int("item_count", e.ItemCount),
		)
	})
}
