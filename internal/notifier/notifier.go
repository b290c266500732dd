package notifier

import "time"

// Event describes a recorded inventory transaction, published so external
// consumers (dashboards, alerting) can react without polling.
type Event struct {
	TransactionID uint      `json:"transaction_id"`
	ItemID        uint      `json:"item_id"`
	UserID        uint      `json:"user_id"`
	Action        string    `json:"action"`
	State         string    `json:"state,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher delivers events on a best-effort, fire-and-forget basis.
// Delivery failures must never affect the write that produced the event.
type Publisher interface {
	Publish(event Event) error
	Close() error
}

// NoopPublisher is used when no Redis backend is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(Event) error { return nil }
func (NoopPublisher) Close() error        { return nil }
