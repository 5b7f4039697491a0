package dashboard

import (
	"context"
	"math/rand"
	"time"
)

// Latency models the artificial delay every facade operation introduces
// before touching the store. The delay is purely cosmetic (it emulates
// a remote backend for the demo UI), so tests inject NoLatency.
type Latency interface {
	// Wait blocks for the injected delay or until ctx is cancelled.
	Wait(ctx context.Context) error
}

// RandomLatency waits a uniformly distributed duration in [Min, Max].
type RandomLatency struct {
	Min time.Duration
	Max time.Duration
}

// Wait implements Latency.
func (l RandomLatency) Wait(ctx context.Context) error {
	d := l.Min
	if l.Max > l.Min {
		d += time.Duration(rand.Int63n(int64(l.Max - l.Min + 1)))
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoLatency waits only for ctx cancellation checks, never for time.
type NoLatency struct{}

// Wait implements Latency.
func (NoLatency) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Service is the API facade over the store: every externally callable
// operation is a method on it. Writes take the store's write lock, so
// two racing updates interleave whole, last writer wins; reads share
// the read lock and never mutate.
type Service struct {
	store   *Store
	latency Latency
}

// NewService constructs a Service over store. A nil latency disables
// the artificial delay.
func NewService(store *Store, latency Latency) *Service {
	if latency == nil {
		latency = NoLatency{}
	}
	return &Service{store: store, latency: latency}
}

// Store exposes the underlying store for seeding and tests.
func (s *Service) Store() *Store {
	return s.store
}

func (s *Service) wait(ctx context.Context) error {
	return s.latency.Wait(ctx)
}
