// Package session journals wizard intents as events on JetStream and rebuilds
// wizard sessions from them.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/nats"
)

// Event is one accepted intent in the journal.
type Event struct {
	ID        string          `json:"id"`        // NATS stream sequence
	Timestamp time.Time       `json:"timestamp"` // When the intent was applied
	Session   string          `json:"session"`   // Session name
	Type      string          `json:"type"`      // style, hook, script, step, control
	Action    string          `json:"action"`    // select, remove, focus, tab, advance, retreat, jump, reset
	Meta      json.RawMessage `json:"meta,omitempty"`
	Data      string          `json:"data"` // Entity id, tab or step name
}

// Actions
const (
	ActionSelect  = "select"
	ActionRemove  = "remove"
	ActionFocus   = "focus"
	ActionTab     = "tab"
	ActionAdvance = "advance"
	ActionRetreat = "retreat"
	ActionJump    = "jump"
	ActionReset   = "reset"
)

// slotMeta is the metadata of script events.
type slotMeta struct {
	Slot int `json:"slot"`
}

// Store reads and writes the journal stream.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStore creates a Store over the journal stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream}
}

// PublishEvent appends event to the journal on viralkit.<session>.<type>.
func (s *Store) PublishEvent(ctx context.Context, event Event) (*jetstream.PubAck, error) {
	if err := nats.ValidateSessionName(event.Session); err != nil {
		return nil, err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := nats.SubjectForEvent(event.Session, event.Type)
	logger.Debug("Publishing event: session=%s type=%s action=%s", event.Session, event.Type, event.Action)

	ack, err := s.js.Publish(ctx, subject, data)
	if err != nil {
		logger.Error("Failed to publish event to subject %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}
	return ack, nil
}

// Events returns every event of a session in journal order. Malformed
// messages are skipped with a warning.
func (s *Store) Events(ctx context.Context, session string) ([]Event, error) {
	if err := nats.ValidateSessionName(session); err != nil {
		return nil, err
	}

	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: nats.SubjectForSession(session),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	const batchSize = 1000
	var (
		events    []Event
		malformed int
	)
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		n := 0
		for msg := range msgs.Messages() {
			n++
			meta, _ := msg.Metadata()

			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				if meta != nil {
					logger.Warn("Skipping malformed event (seq=%d): %v", meta.Sequence.Stream, err)
				}
				_ = msg.Ack()
				continue
			}
			if event.ID == "" && meta != nil {
				event.ID = fmt.Sprintf("%d", meta.Sequence.Stream)
			}
			events = append(events, event)
			_ = msg.Ack()
		}

		if n < batchSize {
			break
		}
	}

	if malformed > 0 {
		logger.Warn("Skipped %d malformed events in session %s", malformed, session)
	}
	logger.Debug("Loaded %d events for session %s", len(events), session)
	return events, nil
}
