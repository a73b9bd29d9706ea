package service

import (
	"context"
	"sync"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/adapter"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// stallWatchdog wraps a stream and fails it when no event arrives within
// timeout. It forwards events unchanged otherwise.
type stallWatchdog struct {
	inner   adapter.StreamHandle
	timeout time.Duration
	events  chan models.StreamEvent

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once

	logger *logger.Logger
}

func newStallWatchdog(inner adapter.StreamHandle, timeout time.Duration, logger *logger.Logger) *stallWatchdog {
	ctx, cancel := context.WithCancel(context.Background())
	w := &stallWatchdog{
		inner:   inner,
		timeout: timeout,
		events:  make(chan models.StreamEvent),
		cancel:  cancel,
		logger:  logger,
	}

	w.wg.Add(1)
	go w.watch(ctx)

	return w
}

// ID implements [adapter.StreamHandle].
func (w *stallWatchdog) ID() string {
	return w.inner.ID()
}

// Events implements [adapter.StreamHandle].
func (w *stallWatchdog) Events() <-chan models.StreamEvent {
	return w.events
}

// Close implements [adapter.StreamHandle]. It stops the watchdog, closes the
// wrapped stream and blocks until the forwarding goroutine has exited.
func (w *stallWatchdog) Close() {
	w.once.Do(func() {
		w.cancel()
		w.inner.Close()
		w.wg.Wait()
	})
}

func (w *stallWatchdog) watch(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.events)

	timer := time.NewTimer(w.timeout)
	defer timer.Stop()

	in := w.inner.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-in:
			if !ok {
				return
			}
			if !w.forward(ctx, event) {
				return
			}
			timer.Reset(w.timeout)
		case <-timer.C:
			w.logger.Warn().
				Str("session_id", w.inner.ID()).
				Dur("timeout", w.timeout).
				Msg("no stream event within timeout")
			w.forward(ctx, models.StreamError{Message: MsgStreamStalled, Transport: true})
			return
		}
	}
}

func (w *stallWatchdog) forward(ctx context.Context, event models.StreamEvent) bool {
	select {
	case w.events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
