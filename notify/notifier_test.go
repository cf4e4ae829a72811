package notify

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Notify(e Event) {
	*r.log = append(*r.log, r.name+":"+e.Kind.String())
}

func TestRaise_Order(t *testing.T) {
	n := New()

	var log []string

	n.Subscribe(recorder{"a", &log})
	n.Subscribe(recorder{"b", &log})

	tx := uuid.New()

	var got Event

	n.SubscribeFunc(func(e Event) { got = e })

	seq := n.Raise(Event{Kind: KindCommit, Label: "age", TxID: tx})

	assert.Equal(t, []string{"a:commit", "b:commit"}, log)
	assert.Equal(t, uint64(1), seq)
	assert.Equal(t, Event{Kind: KindCommit, Label: "age", TxID: tx, Seq: 1}, got)

	assert.Equal(t, uint64(2), n.Raise(Event{Kind: KindUndo}))
	assert.Equal(t, uint64(2), got.Seq)
}

func TestUnsubscribe(t *testing.T) {
	n := New()

	var log []string

	a := n.Subscribe(recorder{"a", &log})
	b := n.Subscribe(recorder{"b", &log})

	assert.Equal(t, 2, n.Len())
	assert.True(t, n.Unsubscribe(a))
	assert.False(t, n.Unsubscribe(a), "second unsubscribe is a no-op")
	assert.False(t, n.Unsubscribe(nil))

	n.Raise(Event{Kind: KindRedo})
	assert.Equal(t, []string{"b:redo"}, log)

	b.Close()
	b.Close()
	assert.Zero(t, n.Len())

	n.Raise(Event{Kind: KindRedo})
	assert.Len(t, log, 1)
}

func TestRaise_ReentrantIsQueued(t *testing.T) {
	n := New()

	var log []string

	n.SubscribeFunc(func(e Event) {
		log = append(log, "first:"+e.Kind.String())

		if e.Kind == KindCommit {
			seq := n.Raise(Event{Kind: KindRecompute})
			log = append(log, "raised recompute")
			assert.Equal(t, uint64(2), seq)
		}
	})
	n.Subscribe(recorder{"second", &log})

	n.Raise(Event{Kind: KindCommit})

	assert.Equal(t, []string{
		"first:commit",
		"raised recompute",
		"second:commit",
		"first:recompute",
		"second:recompute",
	}, log)
}

func TestRaise_UnsubscribeDuringDispatch(t *testing.T) {
	n := New()

	var log []string

	var second *Subscription

	n.SubscribeFunc(func(e Event) {
		log = append(log, "first")
		second.Close()
	})

	second = n.Subscribe(recorder{"second", &log})

	n.Raise(Event{Kind: KindCommit})

	assert.Equal(t, []string{"first"}, log)
	assert.Equal(t, 1, n.Len())
}

func TestRaise_SubscribeDuringDispatch(t *testing.T) {
	n := New()

	var log []string

	n.SubscribeFunc(func(e Event) {
		if e.Kind == KindCommit {
			n.Subscribe(recorder{"late", &log})
		}
	})

	n.Raise(Event{Kind: KindCommit})
	assert.Empty(t, log, "a subscriber added during dispatch misses the current event")

	n.Raise(Event{Kind: KindUndo})
	assert.Equal(t, []string{"late:undo"}, log)
}

func TestSubscribeContext(t *testing.T) {
	n := New()
	ctx, cancel := context.WithCancel(context.Background())

	var log []string

	n.SubscribeContext(ctx, recorder{"scoped", &log})
	n.Subscribe(recorder{"plain", &log})

	n.Raise(Event{Kind: KindCommit})
	assert.Equal(t, []string{"scoped:commit", "plain:commit"}, log)

	cancel()

	n.Raise(Event{Kind: KindUndo})
	assert.Equal(t, []string{"scoped:commit", "plain:commit", "plain:undo"}, log)
	assert.Equal(t, 1, n.Len())
}

func TestRaise_RecoversPanickingObserver(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	n := New(WithLogger(zap.New(core)))

	var log []string

	n.SubscribeFunc(func(Event) { panic("boom") })
	n.Subscribe(recorder{"after", &log})

	require.NotPanics(t, func() { n.Raise(Event{Kind: KindReset}) })
	assert.Equal(t, []string{"after:reset"}, log)

	entries := logs.FilterMessage("observer panicked").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "notify", entries[0].LoggerName)

	// still usable
	n.Raise(Event{Kind: KindReset})
	assert.Len(t, log, 2)
}

func TestNotifier_ConcurrentSubscribe(t *testing.T) {
	n := New()

	var wg sync.WaitGroup

	subs := make([]*Subscription, 32)
	for i := range subs {
		wg.Add(1)

		go func() {
			defer wg.Done()
			subs[i] = n.SubscribeFunc(func(Event) {})
		}()
	}

	wg.Wait()
	assert.Equal(t, 32, n.Len())

	for _, s := range subs {
		s.Close()
	}

	assert.Zero(t, n.Len())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "commit", KindCommit.String())
	assert.Equal(t, "reset", KindReset.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, 6, KindTotal)
}
