package interfaces

// EventPublisher publishes domain events to an external broker.
type EventPublisher interface {
	Publish(topic string, event any) error
}
