package session

import (
	"context"
	"encoding/json"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/logger"
	"github.com/shesviral/viralkit/internal/nats"
	"github.com/shesviral/viralkit/internal/wizard"
)

// Replay rebuilds a wizard session by applying every journaled intent of
// the named session to a fresh controller over cat.
func (s *Store) Replay(ctx context.Context, name string, cat *catalog.Catalog) (*wizard.Session, error) {
	events, err := s.Events(ctx, name)
	if err != nil {
		return nil, err
	}

	wiz := wizard.New(cat)
	for _, event := range events {
		if !Apply(wiz, event) {
			logger.Warn("Replay of session %s: event %s (%s/%s) was not accepted", name, event.ID, event.Type, event.Action)
		}
	}
	return wiz, nil
}

// Apply dispatches one journaled event as an intent and reports whether the
// controller accepted it. Events referring to ids missing from the catalog
// are rejected.
func Apply(wiz wizard.Intents, event Event) bool {
	cat := catalogOf(wiz)

	switch event.Type {
	case nats.EventTypeStyle:
		st, ok := cat.Style(event.Data)
		return ok && wiz.SelectStyle(st)

	case nats.EventTypeHook:
		h, ok := cat.Hook(event.Data)
		return ok && wiz.SelectHook(h)

	case nats.EventTypeScript:
		var meta slotMeta
		if event.Action != ActionTab {
			if err := json.Unmarshal(event.Meta, &meta); err != nil {
				return false
			}
		}
		switch event.Action {
		case ActionSelect:
			sc, ok := cat.Script(event.Data)
			return ok && wiz.SelectScript(sc, meta.Slot)
		case ActionRemove:
			return wiz.RemoveScript(meta.Slot)
		case ActionFocus:
			return wiz.FocusSlot(meta.Slot)
		case ActionTab:
			return wiz.SelectTab(catalog.ScriptType(event.Data))
		}

	case nats.EventTypeStep:
		switch event.Action {
		case ActionAdvance:
			return wiz.AdvanceStep()
		case ActionRetreat:
			return wiz.RetreatStep()
		case ActionJump:
			step, err := wizard.ParseStep(event.Data)
			return err == nil && wiz.JumpToStep(step)
		}

	case nats.EventTypeControl:
		if event.Action == ActionReset {
			return wiz.Reset()
		}
	}
	return false
}

// catalogOf returns the catalog behind a controller, or an empty one.
func catalogOf(wiz wizard.Intents) *catalog.Catalog {
	type catalogued interface {
		Catalog() *catalog.Catalog
	}
	if c, ok := wiz.(catalogued); ok && c.Catalog() != nil {
		return c.Catalog()
	}
	return catalog.New(nil, nil, nil)
}
