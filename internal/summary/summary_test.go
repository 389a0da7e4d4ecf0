package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/wizard"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var exportDate = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func completeView(t *testing.T) wizard.View {
	t.Helper()
	cat := catalog.Default()
	w := wizard.New(cat)

	style, ok := cat.Style("vs7")
	require.True(t, ok)
	hook, ok := cat.Hook("l4")
	require.True(t, ok)
	require.True(t, w.SelectStyle(style))
	require.True(t, w.SelectHook(hook))
	for i, id := range []string{"s1", "e1", "s2", "vp1", "s3"} {
		sc, ok := cat.Script(id)
		require.True(t, ok)
		require.True(t, w.SelectScript(sc, i))
	}
	return w.Snapshot()
}

func TestMarkdownComplete(t *testing.T) {
	t.Parallel()
	v := completeView(t)
	md := Markdown(v)

	assert.True(t, strings.HasPrefix(md, "# Content Summary\n"))
	assert.Contains(t, md, "**Apple Notes App Style**")
	assert.Contains(t, md, v.Hook.Idea)
	assert.Contains(t, md, "Category: Learnings")
	for i := 1; i <= 5; i++ {
		assert.Contains(t, md, fmt.Sprintf("### Script %d (Position %d)", i, i))
	}
	assert.Contains(t, md, "*Engagement Trigger*")
	assert.Contains(t, md, v.Slots[3].Paragraph2)
	assert.NotContains(t, md, "Not selected")
}

func TestMarkdownEmpty(t *testing.T) {
	t.Parallel()
	md := Markdown(wizard.New(nil).Snapshot())
	assert.Contains(t, md, "_No style selected_")
	assert.Contains(t, md, "_No hook selected_")
	assert.Equal(t, 5, strings.Count(md, "_Not selected_"))
}

func TestPlainText(t *testing.T) {
	t.Parallel()
	v := completeView(t)
	text := PlainText(v)

	assert.NotContains(t, text, "**")
	assert.Contains(t, text, "VISUAL STYLE\nApple Notes App Style\n")
	assert.Contains(t, text, "HOOK\n"+v.Hook.Idea+"\n")
	assert.Contains(t, text, "Script 5\n"+v.Slots[4].Paragraph1+"\n")
}

func TestItems(t *testing.T) {
	t.Parallel()
	v := completeView(t)
	items := Items(v)

	require.Len(t, items, 11)
	assert.Equal(t, Item{Label: "Hook", Text: v.Hook.Idea}, items[0])
	assert.Equal(t, "Script 1 P1", items[1].Label)
	assert.Equal(t, "Script 5 P2", items[10].Label)
	assert.Equal(t, v.Slots[4].Paragraph2, items[10].Text)

	assert.Empty(t, Items(wizard.New(nil).Snapshot()))
}

func TestFileName(t *testing.T) {
	t.Parallel()
	v := completeView(t)
	assert.Equal(t, "apple-notes-app-style-2026-10-15.md", FileName(v, exportDate))
	assert.Equal(t, "content-2026-10-15.md", FileName(wizard.New(nil).Snapshot(), exportDate))
}

func TestWrite(t *testing.T) {
	t.Parallel()
	v := completeView(t)
	dir := filepath.Join(t.TempDir(), "exports")

	path, err := Write(dir, v, exportDate)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "apple-notes-app-style-2026-10-15.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Markdown(v), string(data))
}

func TestWriteFailsOnFile(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Write(blocker, completeView(t), exportDate)
	assert.Error(t, err)
}
