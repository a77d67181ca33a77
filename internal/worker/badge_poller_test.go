package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type stubCounter struct {
	count atomic.Int64
	fail  atomic.Bool
	calls atomic.Int64
}

func (s *stubCounter) CountPending(context.Context) (int, error) {
	s.calls.Add(1)
	if s.fail.Load() {
		return 0, errors.New("storage down")
	}
	return int(s.count.Load()), nil
}

type stubCache struct {
	last atomic.Int64
	set  atomic.Bool
}

func (s *stubCache) SetPending(_ context.Context, count int) error {
	s.last.Store(int64(count))
	s.set.Store(true)
	return nil
}

func (s *stubCache) GetPending(context.Context) (int, bool, error) {
	if !s.set.Load() {
		return 0, false, nil
	}
	return int(s.last.Load()), true, nil
}

func TestBadgePollerPollsImmediately(t *testing.T) {
	counter := &stubCounter{}
	counter.count.Store(4)
	poller := NewBadgePoller(counter, nil, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for poller.Pending(ctx) != 4 {
		select {
		case <-deadline:
			t.Fatal("first poll did not run promptly")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done
}

func TestBadgePollerColdStartReadsCache(t *testing.T) {
	cache := &stubCache{}
	if err := cache.SetPending(context.Background(), 9); err != nil {
		t.Fatalf("SetPending: %v", err)
	}

	// Not yet polled: the value another instance wrote must show through.
	poller := NewBadgePoller(&stubCounter{}, cache, time.Hour, nil)
	if got := poller.Pending(context.Background()); got != 9 {
		t.Fatalf("Pending before first poll = %d, want 9 from cache", got)
	}
}

func TestBadgePollerPrefersOwnPollOverCache(t *testing.T) {
	counter := &stubCounter{}
	counter.count.Store(3)
	cache := &stubCache{}
	if err := cache.SetPending(context.Background(), 9); err != nil {
		t.Fatalf("SetPending: %v", err)
	}

	poller := NewBadgePoller(counter, cache, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	deadline := time.After(2 * time.Second)
	for counter.calls.Load() < 1 {
		select {
		case <-deadline:
			t.Fatal("first poll did not run")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if got := poller.Pending(ctx); got != 3 {
		t.Fatalf("Pending after poll = %d, want 3", got)
	}
}

func TestBadgePollerRepeatsOnInterval(t *testing.T) {
	counter := &stubCounter{}
	counter.count.Store(1)
	cache := &stubCache{}
	poller := NewBadgePoller(counter, cache, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	deadline := time.After(2 * time.Second)
	for counter.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected repeated polls, got %d", counter.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	count, ok, err := cache.GetPending(context.Background())
	if err != nil || !ok || count != 1 {
		t.Fatalf("cache = (%d, %v, %v), want (1, true, nil)", count, ok, err)
	}
}

func TestBadgePollerKeepsLastValueOnError(t *testing.T) {
	counter := &stubCounter{}
	counter.count.Store(7)
	poller := NewBadgePoller(counter, nil, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	deadline := time.After(2 * time.Second)
	for poller.Pending(ctx) != 7 {
		select {
		case <-deadline:
			t.Fatal("initial value never observed")
		case <-time.After(5 * time.Millisecond):
		}
	}

	before := counter.calls.Load()
	counter.fail.Store(true)

	for counter.calls.Load() < before+2 {
		select {
		case <-deadline:
			t.Fatal("poller stopped polling after errors")
		case <-time.After(5 * time.Millisecond):
		}
	}
	if got := poller.Pending(ctx); got != 7 {
		t.Fatalf("Pending = %d after errors, want 7", got)
	}
}

func TestBadgePollerStopsOnCancel(t *testing.T) {
	counter := &stubCounter{}
	poller := NewBadgePoller(counter, nil, 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
