package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()
	c := Default()

	require.False(t, c.Empty(), "embedded catalog should not be empty")
	assert.Len(t, c.Styles(), 12)

	// Every script type has at least one entry so both families can complete the wizard
	for _, typ := range ScriptTypes {
		assert.NotEmpty(t, c.ScriptsOfType(typ), "no scripts of type %s", typ)
	}

	// Every hook category belongs to one of the two families
	for _, h := range c.Hooks() {
		known := append(HookCategories(false), HookCategories(true)...)
		assert.Contains(t, known, h.Category, "hook %s has unknown category", h.ID)
	}
}

func TestStyleIsMistake(t *testing.T) {
	t.Parallel()
	tests := []struct {
		title string
		want  bool
	}{
		{"Mistakes with red title:", true},
		{"Mistakes with X-Emoji:", true},
		{"common MISTAKE list", true},
		{"White Title + White Paragraph:", false},
		{"Apple Notes App Style", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Style{Title: tt.title}.IsMistake())
		})
	}
}

func TestStyleDisplayTitle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "White Title + White Paragraph", Style{Title: "White Title + White Paragraph:"}.DisplayTitle())
	assert.Equal(t, "Numbering Style (:)", Style{Title: "Numbering Style (:)"}.DisplayTitle())
}

func TestLoadSkipsMalformedEntries(t *testing.T) {
	t.Parallel()
	src := `
styles:
  - {id: a, title: "A"}
  - {id: "", title: "no id"}
  - {id: a, title: "duplicate"}
hooks:
  - {id: h1, category: Professor, idea: "hello"}
  - {id: h2, category: Professor, idea: ""}
scripts:
  - {id: s1, type: other, paragraph1: p1, paragraph2: p2}
  - {id: s2, type: unknown, paragraph1: p1, paragraph2: p2}
  - {id: s1, type: engagement, paragraph1: p1, paragraph2: p2}
`
	c, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, c.Styles(), 1)
	assert.Equal(t, "A", c.Styles()[0].Title)
	assert.Len(t, c.Hooks(), 1)
	require.Len(t, c.Scripts(), 1)
	assert.Equal(t, TypeOther, c.Scripts()[0].Type, "first script with a duplicate id wins")
}

func TestLoadEmptyDocument(t *testing.T) {
	t.Parallel()
	c, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, c.Empty())
	assert.Empty(t, c.Scripts())
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := Load(strings.NewReader("styles: [unterminated"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("scripts:\n  - {id: x, type: mistake_viral, paragraph1: a, paragraph2: b}\n"), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	s, ok := c.Script("x")
	require.True(t, ok)
	assert.Equal(t, TypeMistakeViral, s.Type)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestOpen(t *testing.T) {
	t.Parallel()
	c, err := Open("")
	require.NoError(t, err)
	assert.False(t, c.Empty())
}

func TestLookups(t *testing.T) {
	t.Parallel()
	c := Default()

	style, ok := c.Style("vs11")
	require.True(t, ok)
	assert.True(t, style.IsMistake())

	hook, ok := c.Hook("m1")
	require.True(t, ok)
	assert.Equal(t, "Ex TikTok - Mistakes", hook.Category)

	_, ok = c.Script("does-not-exist")
	assert.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	c := Default()
	scripts := c.Scripts()
	scripts[0].ID = "mutated"

	assert.NotEqual(t, "mutated", c.Scripts()[0].ID)
}

func TestScriptTypeLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Engagement Trigger", TypeEngagement.Label())
	assert.Equal(t, "Mistake Viral Plug", TypeMistakeViral.Label())
	assert.Equal(t, "custom", ScriptType("custom").Label())
	assert.False(t, ScriptType("custom").Valid())
}

func TestHookCategories(t *testing.T) {
	t.Parallel()
	regular := HookCategories(false)
	mistake := HookCategories(true)

	assert.Len(t, regular, 8)
	assert.Len(t, mistake, 5)
	assert.Equal(t, "Ex TikTok", regular[0])
	assert.Equal(t, "Ex TikTok - Mistakes", mistake[0])

	// Returned slices are copies
	regular[0] = "changed"
	assert.Equal(t, "Ex TikTok", HookCategories(false)[0])
}

func TestCategoryLabelAndSlug(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Learnings", CategoryLabel("Learnings - Mistakes"))
	assert.Equal(t, "AI Tips", CategoryLabel("AI Tips"))
	assert.True(t, IsMistakeCategory("Professor - Mistakes"))
	assert.False(t, IsMistakeCategory("Professor"))

	assert.Equal(t, "ex-tiktok", CategorySlug("Ex TikTok"))
	assert.Equal(t, "new-tiktok-algorithm", CategorySlug("New TikTok Algorithm"))
	assert.Equal(t, "ex-tiktok-mistakes", CategorySlug("Ex TikTok - Mistakes"))
}

func TestHookFilters(t *testing.T) {
	t.Parallel()
	c := Default()

	for _, h := range c.HooksForFamily(true) {
		assert.True(t, IsMistakeCategory(h.Category))
	}
	for _, h := range c.HooksForFamily(false) {
		assert.False(t, IsMistakeCategory(h.Category))
	}

	professor := c.HooksInCategory("Professor")
	require.NotEmpty(t, professor)
	assert.Equal(t, professor, c.HooksBySlug("Professor"))
	assert.Equal(t, c.HooksInCategory("Learnings - Mistakes"), c.HooksBySlug("learnings-mistakes"))
	assert.Empty(t, c.HooksBySlug("no-such-category"))
}
