// Package catalog holds the immutable content catalog: visual styles, hooks and scripts.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shesviral/viralkit/internal/logger"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// file is the on-disk YAML layout of a catalog.
type file struct {
	Styles  []Style  `yaml:"styles"`
	Hooks   []Hook   `yaml:"hooks"`
	Scripts []Script `yaml:"scripts"`
}

// Catalog is a read-only set of styles, hooks and scripts.
// Entries keep the order in which they were loaded.
type Catalog struct {
	styles  []Style
	hooks   []Hook
	scripts []Script

	styleIdx  map[string]int
	hookIdx   map[string]int
	scriptIdx map[string]int
}

// New builds a catalog from already decoded entries.
// Malformed and duplicate entries are dropped with a warning.
func New(styles []Style, hooks []Hook, scripts []Script) *Catalog {
	c := &Catalog{
		styleIdx:  make(map[string]int),
		hookIdx:   make(map[string]int),
		scriptIdx: make(map[string]int),
	}

	for _, s := range styles {
		if err := validateStyle(s); err != nil {
			logger.Warn("Skipping style: %v", err)
			continue
		}
		if _, dup := c.styleIdx[s.ID]; dup {
			logger.Warn("Skipping duplicate style id %q", s.ID)
			continue
		}
		c.styleIdx[s.ID] = len(c.styles)
		c.styles = append(c.styles, s)
	}

	for _, h := range hooks {
		if err := validateHook(h); err != nil {
			logger.Warn("Skipping hook: %v", err)
			continue
		}
		if _, dup := c.hookIdx[h.ID]; dup {
			logger.Warn("Skipping duplicate hook id %q", h.ID)
			continue
		}
		c.hookIdx[h.ID] = len(c.hooks)
		c.hooks = append(c.hooks, h)
	}

	for _, s := range scripts {
		if err := validateScript(s); err != nil {
			logger.Warn("Skipping script: %v", err)
			continue
		}
		if _, dup := c.scriptIdx[s.ID]; dup {
			logger.Warn("Skipping duplicate script id %q", s.ID)
			continue
		}
		c.scriptIdx[s.ID] = len(c.scripts)
		c.scripts = append(c.scripts, s)
	}

	logger.Debug("Catalog ready: %d styles, %d hooks, %d scripts", len(c.styles), len(c.hooks), len(c.scripts))
	return c
}

// Load decodes a YAML catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return New(nil, nil, nil), nil
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(f.Styles, f.Hooks, f.Scripts), nil
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	c, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading catalog file %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		// The embedded catalog is checked by tests; an empty catalog is still usable.
		logger.Error("Embedded catalog is invalid: %v", err)
		return New(nil, nil, nil)
	}
	return c
}

// Open returns the catalog at path, or the embedded one when path is empty.
func Open(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Styles returns all styles in catalog order.
func (c *Catalog) Styles() []Style {
	return append([]Style(nil), c.styles...)
}

// Hooks returns all hooks in catalog order.
func (c *Catalog) Hooks() []Hook {
	return append([]Hook(nil), c.hooks...)
}

// Scripts returns all scripts in catalog order.
func (c *Catalog) Scripts() []Script {
	return append([]Script(nil), c.scripts...)
}

// Style looks up a style by id.
func (c *Catalog) Style(id string) (Style, bool) {
	i, ok := c.styleIdx[id]
	if !ok {
		return Style{}, false
	}
	return c.styles[i], true
}

// Hook looks up a hook by id.
func (c *Catalog) Hook(id string) (Hook, bool) {
	i, ok := c.hookIdx[id]
	if !ok {
		return Hook{}, false
	}
	return c.hooks[i], true
}

// Script looks up a script by id.
func (c *Catalog) Script(id string) (Script, bool) {
	i, ok := c.scriptIdx[id]
	if !ok {
		return Script{}, false
	}
	return c.scripts[i], true
}

// ScriptsOfType returns the scripts of type t in catalog order.
func (c *Catalog) ScriptsOfType(t ScriptType) []Script {
	var out []Script
	for _, s := range c.scripts {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// Empty reports whether the catalog has no entries at all.
func (c *Catalog) Empty() bool {
	return len(c.styles) == 0 && len(c.hooks) == 0 && len(c.scripts) == 0
}

func validateStyle(s Style) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("style %q has no id", s.Title)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("style %s has no title", s.ID)
	}
	return nil
}

func validateHook(h Hook) error {
	if strings.TrimSpace(h.ID) == "" {
		return fmt.Errorf("hook %q has no id", h.Idea)
	}
	if strings.TrimSpace(h.Idea) == "" {
		return fmt.Errorf("hook %s has no idea", h.ID)
	}
	return nil
}

func validateScript(s Script) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("script %q has no id", s.Paragraph1)
	}
	if !s.Type.Valid() {
		return fmt.Errorf("script %s has unknown type %q", s.ID, s.Type)
	}
	return nil
}
