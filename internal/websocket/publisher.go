package websocket

// EventPublisher pushes ledger events to connected clients
type EventPublisher interface {
	Publish(event Event)
}

var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting to every subscribed client
func (h *Hub) Publish(event Event) {
	h.Broadcast(event)
}

// NoOpPublisher drops every event (tests, or when live updates are disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(event Event) {}
