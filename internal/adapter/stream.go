package adapter

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

const eventBufferSize = 16

// requestFunc performs the streaming request. The returned response must
// have an unread raw body.
type requestFunc func(ctx context.Context) (*resty.Response, error)

type streamHandle struct {
	id     string
	events chan models.StreamEvent

	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}

	logger *logger.Logger
}

func newStreamHandle(id string, cancel context.CancelFunc, logger *logger.Logger) *streamHandle {
	return &streamHandle{
		id:     id,
		events: make(chan models.StreamEvent, eventBufferSize),
		cancel: cancel,
		done:   make(chan struct{}),
		logger: logger,
	}
}

// ID implements [StreamHandle].
func (s *streamHandle) ID() string {
	return s.id
}

// Events implements [StreamHandle].
func (s *streamHandle) Events() <-chan models.StreamEvent {
	return s.events
}

// Close implements [StreamHandle]. It cancels the request and waits for the
// reader goroutine to release the body.
func (s *streamHandle) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		s.logger.Debug().Msg("stream closed")
	})
}

// run performs the request and pumps decoded events into s.events until a
// terminal event, a transport failure or cancellation. It owns s.events and
// closes it on return.
func (s *streamHandle) run(ctx context.Context, request requestFunc) {
	defer close(s.done)
	defer close(s.events)

	resp, err := request(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Err(err).Msg("search request failed")
		s.emit(ctx, models.StreamError{Message: ErrConnectionLost.Error(), Transport: true})
		return
	}

	body := resp.RawBody()
	defer body.Close()

	if err = mapHTTPError(resp); err != nil {
		s.logger.Err(err).Int("status", resp.StatusCode()).Msg("search request rejected")
		s.emit(ctx, models.StreamError{Message: err.Error(), Transport: true})
		return
	}
	if err = checkEventStream(resp); err != nil {
		s.logger.Err(err).Msg("search response is not an event stream")
		s.emit(ctx, models.StreamError{Message: err.Error(), Transport: true})
		return
	}

	s.logger.Debug().Msg("stream opened")
	s.pump(ctx, newEventReader(body))
}

func (s *streamHandle) pump(ctx context.Context, reader *eventReader) {
	for {
		data, err := reader.Next()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if !errors.Is(err, io.EOF) {
				s.logger.Err(err).Msg("error reading stream")
			} else {
				s.logger.Warn().Msg("stream ended before the terminal phase")
			}
			s.emit(ctx, models.StreamError{Message: ErrConnectionLost.Error(), Transport: true})
			return
		}

		event, ok := decodeEvent(data)
		if !ok {
			s.logger.Debug().Str("payload", data).Msg("ignoring unrecognised message")
			continue
		}

		if !s.emit(ctx, event) {
			return
		}
		if event.Terminal() {
			s.logger.Debug().Msg("terminal event received")
			return
		}
	}
}

// emit delivers event unless the handle is cancelled first.
func (s *streamHandle) emit(ctx context.Context, event models.StreamEvent) bool {
	select {
	case s.events <- event:
		return true
	case <-ctx.Done():
		return false
	}
}
