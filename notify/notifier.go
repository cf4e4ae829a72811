package notify

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Observer receives change events.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) {
	f(e)
}

// Subscription ties an Observer to a Notifier until it is closed or its
// context is done.
type Subscription struct {
	n      *Notifier
	obs    Observer
	ctx    context.Context // nil for plain subscriptions
	closed atomic.Bool
}

// Close removes the subscription. Closing twice is a no-op.
func (s *Subscription) Close() {
	s.n.Unsubscribe(s)
}

func (s *Subscription) active() bool {
	if s.closed.Load() {
		return false
	}

	return s.ctx == nil || s.ctx.Err() == nil
}

// Notifier is a synchronous broadcaster. Observers may subscribe,
// unsubscribe and raise events from inside Notify.
type Notifier struct {
	mu          sync.Mutex
	subs        []*Subscription
	queue       []Event
	seq         uint64
	dispatching bool

	log *zap.Logger
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithLogger sets the logger used to report panicking observers.
func WithLogger(l *zap.Logger) Option {
	return func(n *Notifier) {
		n.log = l
	}
}

// New returns a notifier without subscribers.
func New(opts ...Option) *Notifier {
	n := &Notifier{log: zap.NewNop()}
	for _, opt := range opts {
		opt(n)
	}

	n.log = n.log.Named("notify")

	return n
}

// Subscribe registers o for every event raised from now on.
func (n *Notifier) Subscribe(o Observer) *Subscription {
	return n.subscribe(nil, o)
}

// SubscribeFunc registers fn for every event raised from now on.
func (n *Notifier) SubscribeFunc(fn func(Event)) *Subscription {
	return n.subscribe(nil, ObserverFunc(fn))
}

// SubscribeContext registers o until ctx is done. A subscription whose
// context is done is never called again and is dropped on the next Raise.
func (n *Notifier) SubscribeContext(ctx context.Context, o Observer) *Subscription {
	return n.subscribe(ctx, o)
}

func (n *Notifier) subscribe(ctx context.Context, o Observer) *Subscription {
	s := &Subscription{n: n, obs: o, ctx: ctx}

	n.mu.Lock()
	n.subs = append(n.subs, s)
	n.mu.Unlock()

	return s
}

// Unsubscribe removes s and reports whether it was still subscribed.
func (n *Notifier) Unsubscribe(s *Subscription) bool {
	if s == nil || s.closed.Swap(true) {
		return false
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	i := slices.Index(n.subs, s)
	if i < 0 {
		return false
	}

	n.subs = slices.Delete(n.subs, i, i+1)

	return true
}

// Len returns the number of live subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.prune())
}

// Raise assigns the next sequence number to e and delivers it to every live
// subscriber in subscription order. When called during a dispatch, the event
// is queued behind the current one and Raise returns immediately.
func (n *Notifier) Raise(e Event) uint64 {
	n.mu.Lock()

	n.seq++
	e.Seq = n.seq
	n.queue = append(n.queue, e)

	if n.dispatching {
		n.mu.Unlock()
		return e.Seq
	}

	n.dispatching = true

	for len(n.queue) > 0 {
		next := n.queue[0]
		n.queue = n.queue[1:]
		subs := slices.Clone(n.prune())

		n.mu.Unlock()

		for _, s := range subs {
			// closed by an earlier observer of this same event
			if s.active() {
				n.deliver(s, next)
			}
		}

		n.mu.Lock()
	}

	n.queue = nil
	n.dispatching = false
	n.mu.Unlock()

	return e.Seq
}

func (n *Notifier) deliver(s *Subscription, e Event) {
	defer func() {
		if r := recover(); r != nil {
			n.log.Error("observer panicked",
				zap.Stringer("kind", e.Kind),
				zap.Uint64("seq", e.Seq),
				zap.Any("panic", r))
		}
	}()

	s.obs.Notify(e)
}

// prune drops inactive subscriptions. Callers hold n.mu.
func (n *Notifier) prune() []*Subscription {
	kept := n.subs[:0]

	for _, s := range n.subs {
		if s.active() {
			kept = append(kept, s)
		} else {
			s.closed.Store(true)
		}
	}

	clear(n.subs[len(kept):])
	n.subs = kept

	return kept
}
