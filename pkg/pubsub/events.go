package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
)

const EventTypeBookingChanged = "booking.changed"

// BookingChanged is emitted after the admin mutates a booking on the platform.
type BookingChanged struct {
	EventID     uuid.UUID `json:"event_id"`
	BookingID   int64     `json:"booking_id"`
	PlaceID     int64     `json:"place_id"`
	Action      string    `json:"action"`
	Status      string    `json:"status,omitempty"`
	ActorUserID int64     `json:"actor_user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// BookingEvents publishes booking change events.
type BookingEvents interface {
	PublishBookingChanged(ctx context.Context, event BookingChanged) error
}

// TopicPublisher sends events as JSON messages on a Pub/Sub topic.
type TopicPublisher struct {
	publisher *pubsub.Publisher
}

func NewTopicPublisher(publisher *pubsub.Publisher) *TopicPublisher {
	return &TopicPublisher{publisher: publisher}
}

func (p *TopicPublisher) PublishBookingChanged(ctx context.Context, event BookingChanged) error {
	if p == nil || p.publisher == nil {
		return fmt.Errorf("pubsub publisher not configured")
	}
	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event_type": EventTypeBookingChanged,
			"event_id":   event.EventID.String(),
			"action":     event.Action,
		},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}
	return nil
}

// Stop flushes pending messages.
func (p *TopicPublisher) Stop() {
	if p == nil || p.publisher == nil {
		return
	}
	p.publisher.Stop()
}

// NoopPublisher drops every event; used when no topic is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingChanged(context.Context, BookingChanged) error {
	return nil
}
