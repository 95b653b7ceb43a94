// Package events defines the domain events emitted by registration and the
// publishers that deliver them. Delivery guarantees (ordering, at-least-once)
// belong to the publisher implementations, not to the emitting service.
package events

// Key identifies the kind of a domain event.
type Key string

const (
	KeyUserCreated Key = "user_created"
)

// Payload is the event body. Only the canonical email is carried; no
// credential material ever enters an event.
type Payload struct {
	Email string `json:"email"`
}

// Event is one domain occurrence, emitted exactly once per successful
// registration after the user record is durable.
type Event struct {
	Key     Key
	Payload Payload
}

// UserCreated builds the registration event for the given canonical email.
func UserCreated(email string) Event {
	return Event{Key: KeyUserCreated, Payload: Payload{Email: email}}
}
