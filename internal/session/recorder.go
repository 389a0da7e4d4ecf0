package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/nats"
	"github.com/shesviral/viralkit/internal/wizard"
)

const publishTimeout = 2 * time.Second

// Recorder serializes intents to one wizard session and journals the
// accepted ones. A nil store disables journaling.
type Recorder struct {
	mu    sync.Mutex
	wiz   *wizard.Session
	store *Store
	name  string
}

var _ wizard.Intents = (*Recorder)(nil)

// NewRecorder wraps wiz. name must be a valid session name when store is set.
func NewRecorder(store *Store, name string, wiz *wizard.Session) *Recorder {
	return &Recorder{wiz: wiz, store: store, name: name}
}

// Name returns the session name events are journaled under.
func (r *Recorder) Name() string { return r.name }

// Catalog returns the catalog of the wrapped session.
func (r *Recorder) Catalog() *catalog.Catalog { return r.wiz.Catalog() }

// History returns the journaled events of this session.
func (r *Recorder) History(ctx context.Context) ([]Event, error) {
	if r.store == nil {
		return nil, nil
	}
	return r.store.Events(ctx, r.name)
}

func (r *Recorder) SelectStyle(style catalog.Style) bool {
	return r.do(func() bool { return r.wiz.SelectStyle(style) },
		Event{Type: nats.EventTypeStyle, Action: ActionSelect, Data: style.ID})
}

func (r *Recorder) SelectHook(hook catalog.Hook) bool {
	return r.do(func() bool { return r.wiz.SelectHook(hook) },
		Event{Type: nats.EventTypeHook, Action: ActionSelect, Data: hook.ID})
}

func (r *Recorder) SelectScript(script catalog.Script, slot int) bool {
	return r.do(func() bool { return r.wiz.SelectScript(script, slot) },
		Event{Type: nats.EventTypeScript, Action: ActionSelect, Data: script.ID, Meta: slotJSON(slot)})
}

func (r *Recorder) RemoveScript(slot int) bool {
	return r.do(func() bool { return r.wiz.RemoveScript(slot) },
		Event{Type: nats.EventTypeScript, Action: ActionRemove, Meta: slotJSON(slot)})
}

func (r *Recorder) FocusSlot(slot int) bool {
	return r.do(func() bool { return r.wiz.FocusSlot(slot) },
		Event{Type: nats.EventTypeScript, Action: ActionFocus, Meta: slotJSON(slot)})
}

func (r *Recorder) SelectTab(tab catalog.ScriptType) bool {
	return r.do(func() bool { return r.wiz.SelectTab(tab) },
		Event{Type: nats.EventTypeScript, Action: ActionTab, Data: string(tab)})
}

func (r *Recorder) AdvanceStep() bool {
	return r.do(r.wiz.AdvanceStep, Event{Type: nats.EventTypeStep, Action: ActionAdvance})
}

func (r *Recorder) RetreatStep() bool {
	return r.do(r.wiz.RetreatStep, Event{Type: nats.EventTypeStep, Action: ActionRetreat})
}

func (r *Recorder) JumpToStep(step wizard.Step) bool {
	return r.do(func() bool { return r.wiz.JumpToStep(step) },
		Event{Type: nats.EventTypeStep, Action: ActionJump, Data: step.String()})
}

func (r *Recorder) Reset() bool {
	return r.do(r.wiz.Reset, Event{Type: nats.EventTypeControl, Action: ActionReset})
}

// Snapshot returns the wrapped session's view.
func (r *Recorder) Snapshot() wizard.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wiz.Snapshot()
}

// do applies an intent under the lock and journals it when accepted.
// A failed publish is logged; the intent stays applied.
func (r *Recorder) do(apply func() bool, event Event) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !apply() {
		return false
	}
	if r.store == nil {
		return true
	}

	event.Session = r.name
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if _, err := r.store.PublishEvent(ctx, event); err != nil {
		logger.Error("Failed to journal %s/%s: %v", event.Type, event.Action, err)
	}
	return true
}

func slotJSON(slot int) json.RawMessage {
	b, _ := json.Marshal(slotMeta{Slot: slot})
	return b
}
