package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gameronce/commerce-api/internal/core/ports"
)

type recordingNotifier struct {
	mu        sync.Mutex
	delivered []ports.OrderNotification
	err       error
	done      chan struct{}
	want      int
}

func newRecordingNotifier(want int) *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}), want: want}
}

func (n *recordingNotifier) Notify(_ context.Context, notification ports.OrderNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.delivered = append(n.delivered, notification)
	if len(n.delivered) == n.want {
		close(n.done)
	}
	return n.err
}

func (n *recordingNotifier) wait(t *testing.T) []ports.OrderNotification {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d deliveries", n.want)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.OrderNotification(nil), n.delivered...)
}

func TestDispatcherDeliversAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := newRecordingNotifier(3)
	d := NewDispatcher(4, notifier, zerolog.Nop())
	d.Start(ctx)

	orders := []string{"ORD-1-aa", "ORD-2-bb", "ORD-3-cc"}
	for _, num := range orders {
		d.Enqueue(ports.OrderNotification{NumeroOrden: num, Email: "ana@example.com"})
	}

	delivered := notifier.wait(t)
	got := map[string]bool{}
	for _, n := range delivered {
		got[n.NumeroOrden] = true
	}
	for _, num := range orders {
		if !got[num] {
			t.Errorf("notification %s was never delivered", num)
		}
	}
}

func TestDispatcherPreservesPerOrderOrdering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const rounds = 20
	notifier := newRecordingNotifier(rounds)
	d := NewDispatcher(4, notifier, zerolog.Nop())
	d.Start(ctx)

	// The same order number always hashes to the same worker, so the channel
	// preserves enqueue order end to end.
	for i := 0; i < rounds; i++ {
		d.Enqueue(ports.OrderNotification{NumeroOrden: "ORD-7-xyz", Nombre: name(i)})
	}

	delivered := notifier.wait(t)
	for i, n := range delivered {
		if n.Nombre != name(i) {
			t.Fatalf("delivery %d = %q, want %q", i, n.Nombre, name(i))
		}
	}
}

func name(i int) string { return string(rune('a' + i)) }

func TestDispatcherShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())
	first := d.shardIndex("ORD-123-abcdef")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("ORD-123-abcdef"); got != first {
			t.Fatalf("shardIndex changed between calls: %d then %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Errorf("shardIndex = %d, want within [0,8)", first)
	}
}

func TestDispatcherContinuesAfterFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notifier := newRecordingNotifier(2)
	notifier.err = errors.New("smtp down")
	d := NewDispatcher(1, notifier, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.OrderNotification{NumeroOrden: "ORD-1-aa"})
	d.Enqueue(ports.OrderNotification{NumeroOrden: "ORD-2-bb"})

	// Both attempts happen even though every delivery fails.
	delivered := notifier.wait(t)
	if len(delivered) != 2 {
		t.Errorf("deliveries = %d, want 2", len(delivered))
	}
}
