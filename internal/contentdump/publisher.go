package contentdump

import (
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/pagemill/pagemill/internal/logfields"
)

// PageIndexed is the event emitted after a page is written to the index, for
// downstream search indexers.
type PageIndexed struct {
	Route   string `json:"route"`
	Locale  string `json:"locale,omitempty"`
	Title   string `json:"title"`
	BuildID string `json:"build_id"`
}

// Publisher notifies a NATS subject about indexed pages. It is optional; a
// nil Publisher is a no-op.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to NATS.
func NewPublisher(url, subject string) (*Publisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	slog.Info("Content dump publisher connected", logfields.Subject(subject))
	return &Publisher{conn: conn, subject: subject}, nil
}

// Publish emits a PageIndexed event. Notification failures are logged, not
// propagated: the index write already succeeded and the event is advisory.
func (p *Publisher) Publish(event PageIndexed) {
	if p == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("Failed to encode page indexed event", logfields.Error(err))
		return
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		slog.Warn("Failed to publish page indexed event",
			logfields.Subject(p.subject), logfields.Route(event.Route), logfields.Error(err))
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	p.conn.Close()
}
