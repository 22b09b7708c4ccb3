package service

import (
	"github.com/dafibh/lendbook/lendbook-backend/internal/metrics"
	"github.com/dafibh/lendbook/lendbook-backend/internal/websocket"
)

// eventSink holds the optional live-update publisher shared by the ledger services
type eventSink struct {
	eventPublisher websocket.EventPublisher
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *eventSink) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes a WebSocket event if a publisher is configured
func (s *eventSink) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// observe records the outcome of a ledger operation. Call it deferred with
// the address of the named error result.
func observe(operation string, err *error) {
	metrics.Record(operation, *err)
}
