package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Routing keys of the events published after a record is stored.
const (
	EventUserRegistered = "user.registered"
	EventTweetPosted    = "tweet.posted"
)

// EventPublisher delivers event messages to a broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Event is the envelope of every published message.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Data       interface{} `json:"data"`
}

// notifier publishes events on a best effort basis: failures are logged and
// never reach the caller.
type notifier struct {
	publisher EventPublisher
	log       logrus.FieldLogger
}

func (n notifier) notify(eventType string, data interface{}) {
	if n.publisher == nil {
		return
	}

	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	body, err := json.Marshal(event)
	if err != nil {
		n.log.WithError(err).WithField("event", eventType).Warn("failed to encode event")
		return
	}
	if err := n.publisher.Publish(eventType, body); err != nil {
		n.log.WithError(err).WithField("event", eventType).Warn("failed to publish event")
		return
	}
	n.log.WithFields(logrus.Fields{"event": eventType, "event_id": event.ID}).Debug("event published")
}

// canonicalID renders an already validated UUID in its lowercase hyphenated form.
func canonicalID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return parsed.String()
}
