package theme

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.Writer.Profile = colorprofile.Ascii
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
	}{
		{"#cba6f7", 0xcb, 0xa6, 0xf7},
		{"1e1e2e", 0x1e, 0x1e, 0x2e},
		{"#fff", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b := ParseHexColor(tt.in)
			assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}
}

func TestInterpolateColor(t *testing.T) {
	assert.Equal(t, "#000000", InterpolateColor("#000000", "#ffffff", 0))
	assert.Equal(t, "#ffffff", InterpolateColor("#000000", "#ffffff", 1))
	assert.Equal(t, "#7f7f7f", InterpolateColor("#000000", "#ffffff", 0.5))
}

func TestApplyGradient_KeepsText(t *testing.T) {
	out := ApplyGradient("ab c\nde", "#000000", "#ffffff")
	plain := ansi.Strip(out)
	require.Equal(t, 2, strings.Count(plain, "\n")+1)
	assert.Contains(t, plain, "ab c")
	assert.Contains(t, plain, "de")
}

func TestCurrent(t *testing.T) {
	orig := Current()
	t.Cleanup(func() { SetCurrent(orig) })

	assert.Equal(t, "catppuccin-mocha", orig.Name)
	SetCurrent(nil)
	assert.Same(t, orig, Current())

	SetCurrent(ForMarkdownStyle("light"))
	assert.Equal(t, "catppuccin-latte", Current().Name)
	assert.False(t, Current().IsDark)
	assert.NotNil(t, Current().S())
}

func TestForMarkdownStyle(t *testing.T) {
	assert.True(t, ForMarkdownStyle("dark").IsDark)
	assert.True(t, ForMarkdownStyle("notty").IsDark)
	assert.False(t, ForMarkdownStyle("light").IsDark)
}
