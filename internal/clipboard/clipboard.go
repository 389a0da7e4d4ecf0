// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence the terminal forwards to its own clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/shesviral/viralkit/internal/logger"
)

// Method tells which path delivered a copy.
type Method string

const (
	MethodSystem Method = "system"
	MethodOSC52  Method = "osc52"
)

// ErrUnavailable is returned when neither path could deliver the text.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier copies text. The zero value is not usable; use New.
type Copier struct {
	writeAll func(string) error
	fallback io.Writer
	term     string
}

// New returns a Copier that tries the system clipboard first and writes an
// OSC52 sequence to fallback otherwise. A nil fallback disables OSC52.
func New(fallback io.Writer) *Copier {
	return &Copier{
		writeAll: clipboard.WriteAll,
		fallback: fallback,
		term:     os.Getenv("TERM"),
	}
}

// Copy copies text and reports the method used. Each call is independent,
// so a failed copy can simply be retried.
func (c *Copier) Copy(text string) (Method, error) {
	sysErr := c.writeAll(text)
	if sysErr == nil {
		return MethodSystem, nil
	}
	logger.Debug("System clipboard failed, trying OSC52: %v", sysErr)

	if c.fallback == nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, sysErr)
	}

	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "" || strings.HasPrefix(c.term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(c.term, "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.fallback); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return MethodOSC52, nil
}
