package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName    = "viralkit_events"
	subjectPrefix = "viralkit"

	// Event types
	EventTypeStyle   = "style"
	EventTypeHook    = "hook"
	EventTypeScript  = "script"
	EventTypeStep    = "step"
	EventTypeControl = "control"

	maxSessionName = 64
)

// SubjectForSession returns the wildcard subject for all events of a session.
// Example: "viralkit.mysession.>"
func SubjectForSession(session string) string {
	return fmt.Sprintf("%s.%s.>", subjectPrefix, session)
}

// SubjectForEvent returns the subject of one event type in a session.
// Example: "viralkit.mysession.script"
func SubjectForEvent(session, eventType string) string {
	return fmt.Sprintf("%s.%s.%s", subjectPrefix, session, eventType)
}

// ValidateSessionName checks that name can be used as a subject token:
// alphanumerics, hyphens and underscores, at most 64 characters.
func ValidateSessionName(name string) error {
	if name == "" {
		return fmt.Errorf("session name cannot be empty")
	}
	if len(name) > maxSessionName {
		return fmt.Errorf("session name too long (max %d characters): %s", maxSessionName, name)
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return fmt.Errorf("invalid session name: %s (use only alphanumeric, hyphens, underscores)", name)
		}
	}
	return nil
}

// NewSessionName returns a session name derived from t.
func NewSessionName(t time.Time) string {
	return "wizard-" + t.Format("20060102-150405")
}

// SetupStream creates or updates the journal stream. It keeps every
// session's events in memory for the lifetime of the process.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.MemoryStorage,
		MaxAge:   24 * time.Hour,
	})
}
