package wizard

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/shesviral/viralkit/internal/catalog"
	"github.com/shesviral/viralkit/internal/engine"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	normalStyle  = catalog.Style{ID: "vs1", Title: "White Title + White Paragraph:"}
	mistakeStyle = catalog.Style{ID: "vs11", Title: "Mistakes with red title:"}
	testHook     = catalog.Hook{ID: "h1", Idea: "an idea", Category: "Ex TikTok"}
)

// scenarioCatalog is the five-script catalog of the worked example.
func scenarioCatalog() *catalog.Catalog {
	return catalog.New(
		[]catalog.Style{normalStyle, mistakeStyle},
		[]catalog.Hook{testHook},
		[]catalog.Script{
			{ID: "1", Paragraph1: "one", Type: catalog.TypeOther},
			{ID: "2", Paragraph1: "two", Type: catalog.TypeEngagement},
			{ID: "3", Paragraph1: "three", Type: catalog.TypeOther},
			{ID: "4", Paragraph1: "four", Type: catalog.TypeViralPlug},
			{ID: "5", Paragraph1: "five", Type: catalog.TypeOther},
		},
	)
}

func mustScript(t *testing.T, cat *catalog.Catalog, id string) catalog.Script {
	t.Helper()
	s, ok := cat.Script(id)
	require.True(t, ok, "script %s not in catalog", id)
	return s
}

func slotIDs(v View) []string {
	out := make([]string, len(v.Slots))
	for i, s := range v.Slots {
		if s != nil {
			out[i] = s.ID
		}
	}
	return out
}

func atScripts(t *testing.T, s *Session, style catalog.Style) {
	t.Helper()
	require.True(t, s.SelectStyle(style))
	require.True(t, s.AdvanceStep())
	require.True(t, s.SelectHook(testHook))
	require.True(t, s.AdvanceStep())
	require.Equal(t, StepScripts, s.Step())
}

func TestNewSession(t *testing.T) {
	t.Parallel()
	s := New(nil)
	v := s.Snapshot()

	assert.Equal(t, StepStyle, v.Step)
	assert.Nil(t, v.Style)
	assert.Nil(t, v.Hook)
	assert.Equal(t, 0, v.ActiveSlot)
	assert.Equal(t, engine.Normal, v.Family)
	assert.False(t, v.CanAdvance)
	assert.Empty(t, v.Eligible)
	assert.Empty(t, v.Listed)
	assert.Equal(t, catalog.TypeOther, v.ImpliedCategory)
}

func TestWorkedScenario(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	atScripts(t, s, normalStyle)

	require.True(t, s.SelectScript(mustScript(t, cat, "2"), 0))
	v := s.Snapshot()
	assert.Equal(t, 1, v.ActiveSlot)
	for _, sc := range v.Eligible {
		assert.Equal(t, catalog.TypeOther, sc.Type)
	}
	assert.Equal(t, []catalog.ScriptType{catalog.TypeOther}, v.Tabs)
	assert.Equal(t, "Already selected", v.DisabledReasons["2"])

	require.True(t, s.SelectScript(mustScript(t, cat, "1"), 1))
	assert.Equal(t, 2, s.ActiveSlot())

	before := s.Snapshot()
	assert.False(t, s.SelectScript(mustScript(t, cat, "2"), 2))
	assert.Empty(t, cmp.Diff(slotIDs(before), slotIDs(s.Snapshot())))

	require.True(t, s.SelectScript(mustScript(t, cat, "3"), 2))
	require.True(t, s.SelectScript(mustScript(t, cat, "4"), 3))
	require.True(t, s.SelectScript(mustScript(t, cat, "5"), 4))

	v = s.Snapshot()
	assert.Equal(t, []string{"2", "1", "3", "4", "5"}, slotIDs(v))
	assert.Equal(t, 4, v.ActiveSlot, "active slot is unchanged once every slot is filled")
	assert.True(t, v.CanAdvance)
	assert.True(t, v.Complete())
	require.True(t, s.AdvanceStep())
	assert.Equal(t, StepSummary, s.Step())
}

func TestMistakeFamilyFreshSlots(t *testing.T) {
	t.Parallel()
	s := New(catalog.Default())
	atScripts(t, s, mistakeStyle)

	v := s.Snapshot()
	assert.Equal(t, engine.Mistake, v.Family)
	assert.Contains(t, []catalog.ScriptType{catalog.TypeMistake, catalog.TypeMistakeEngagement}, v.ImpliedCategory)
	assert.Equal(t, catalog.HookCategories(true), v.HookCategories)

	require.True(t, s.FocusSlot(3))
	v = s.Snapshot()
	require.NotEmpty(t, v.Eligible)
	for _, sc := range v.Eligible {
		assert.Equal(t, catalog.TypeMistakeViral, sc.Type)
	}
	assert.Equal(t, "Mistake Viral Plug (Mistake Style)", v.Subtitle)
}

func TestSelectScript_Rejections(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	require.True(t, s.SelectStyle(normalStyle))

	assert.False(t, s.SelectScript(mustScript(t, cat, "1"), -1))
	assert.False(t, s.SelectScript(mustScript(t, cat, "1"), 5))
	assert.False(t, s.SelectScript(mustScript(t, cat, "4"), 0), "viral plug cannot open the pair")
	assert.False(t, s.SelectScript(mustScript(t, cat, "2"), 2), "engagement cannot fill slot 2")
	assert.Equal(t, 0, s.Snapshot().Filled)
}

func TestSelectScript_WrapsToFirstEmpty(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	require.True(t, s.SelectStyle(normalStyle))

	require.True(t, s.SelectScript(mustScript(t, cat, "5"), 4))
	assert.Equal(t, 0, s.ActiveSlot())

	require.True(t, s.SelectScript(mustScript(t, cat, "4"), 3))
	assert.Equal(t, 0, s.ActiveSlot())
}

func TestRemoveScript(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	require.True(t, s.SelectStyle(normalStyle))
	require.True(t, s.SelectScript(mustScript(t, cat, "2"), 0))
	require.True(t, s.SelectScript(mustScript(t, cat, "1"), 1))
	require.Equal(t, 2, s.ActiveSlot())

	require.True(t, s.RemoveScript(0))
	once := s.Snapshot()
	assert.Equal(t, 0, once.ActiveSlot)
	assert.Nil(t, once.Slots[0])

	assert.False(t, s.RemoveScript(0))
	twice := s.Snapshot()
	assert.Equal(t, slotIDs(once), slotIDs(twice))
	assert.Equal(t, once.ActiveSlot, twice.ActiveSlot)

	// Slot 1 still holds "other", so slot 0 now only accepts engagement.
	assert.Equal(t, catalog.TypeEngagement, once.ImpliedCategory)
	assert.Equal(t, []catalog.ScriptType{catalog.TypeEngagement}, once.Tabs)

	assert.False(t, s.RemoveScript(7))
}

func TestRemoveScriptFromSummaryReturnsToScripts(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	atScripts(t, s, normalStyle)
	for i, id := range []string{"2", "1", "3", "4", "5"} {
		require.True(t, s.SelectScript(mustScript(t, cat, id), i))
	}
	require.True(t, s.AdvanceStep())
	require.Equal(t, StepSummary, s.Step())

	require.True(t, s.RemoveScript(0))
	v := s.Snapshot()
	assert.Equal(t, StepScripts, v.Step)
	assert.Equal(t, 4, v.Filled)
	assert.Equal(t, 0, v.ActiveSlot)
	assert.False(t, v.CanAdvance)
	assert.False(t, s.AdvanceStep())

	require.True(t, s.SelectScript(mustScript(t, cat, "2"), 0))
	require.True(t, s.AdvanceStep())
	assert.Equal(t, StepSummary, s.Step())
}

func TestFocusSlot(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	require.True(t, s.SelectScript(mustScript(t, cat, "1"), 0))

	assert.False(t, s.FocusSlot(0), "filled slots cannot be focused")
	assert.False(t, s.FocusSlot(9))
	assert.True(t, s.FocusSlot(3))
	assert.Equal(t, 3, s.ActiveSlot())
	assert.Equal(t, "Viral Plug Required", s.Snapshot().Subtitle)
}

func TestSelectTab(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)

	v := s.Snapshot()
	assert.Equal(t, catalog.TypeOther, v.ActiveCategory)
	assert.Equal(t, "Choose: Other Scripts OR Engagement Triggers", v.Subtitle)

	require.True(t, s.SelectTab(catalog.TypeEngagement))
	v = s.Snapshot()
	assert.Equal(t, catalog.TypeEngagement, v.ActiveCategory)
	assert.Equal(t, catalog.TypeOther, v.ImpliedCategory)
	require.Len(t, v.Listed, 1)
	assert.Equal(t, "2", v.Listed[0].ID)

	assert.False(t, s.SelectTab(catalog.TypeViralPlug))

	// Changing the active slot drops the explicit tab.
	require.True(t, s.FocusSlot(2))
	require.True(t, s.FocusSlot(0))
	assert.Equal(t, catalog.TypeOther, s.Snapshot().ActiveCategory)
}

func TestStepGating(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)

	assert.False(t, s.AdvanceStep())
	assert.False(t, s.RetreatStep())
	assert.Equal(t, StepStyle, s.Step())

	assert.False(t, s.SelectStyle(catalog.Style{}))
	require.True(t, s.SelectStyle(normalStyle))
	require.True(t, s.AdvanceStep())

	assert.False(t, s.AdvanceStep(), "hook required")
	assert.False(t, s.SelectHook(catalog.Hook{}))
	require.True(t, s.SelectHook(testHook))
	require.True(t, s.AdvanceStep())

	require.True(t, s.SelectScript(mustScript(t, cat, "1"), 0))
	assert.False(t, s.AdvanceStep())
	assert.Equal(t, StepScripts, s.Step())

	require.True(t, s.RetreatStep())
	assert.Equal(t, StepHook, s.Step())
	assert.False(t, s.JumpToStep(StepSummary))
	assert.False(t, s.JumpToStep(StepHook))
}

func TestBackToEditKeepsSelections(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	atScripts(t, s, normalStyle)
	for i, id := range []string{"2", "1", "3", "4", "5"} {
		require.True(t, s.SelectScript(mustScript(t, cat, id), i))
	}
	require.True(t, s.AdvanceStep())
	assert.False(t, s.AdvanceStep(), "summary has no forward edge")

	require.True(t, s.JumpToStep(StepStyle))
	v := s.Snapshot()
	assert.Equal(t, StepStyle, v.Step)
	assert.Equal(t, "vs1", v.Style.ID)
	assert.Equal(t, "h1", v.Hook.ID)
	assert.Equal(t, 5, v.Filled)
}

func TestStyleChangeKeepsStaleSlots(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	require.True(t, s.SelectStyle(normalStyle))
	require.True(t, s.SelectScript(mustScript(t, cat, "2"), 0))
	require.True(t, s.SelectScript(mustScript(t, cat, "4"), 3))

	require.True(t, s.SelectStyle(mistakeStyle))
	v := s.Snapshot()
	assert.Equal(t, engine.Mistake, v.Family)
	assert.Equal(t, 2, v.Filled)
	assert.Equal(t, []int{0, 3}, v.StaleSlots)

	require.True(t, s.SelectStyle(normalStyle))
	assert.Empty(t, s.Snapshot().StaleSlots)
}

func TestStyleChangeMarksStaleHook(t *testing.T) {
	t.Parallel()
	s := New(scenarioCatalog())
	require.True(t, s.SelectStyle(normalStyle))
	require.True(t, s.SelectHook(testHook))
	assert.False(t, s.Snapshot().StaleHook)

	require.True(t, s.SelectStyle(mistakeStyle))
	v := s.Snapshot()
	assert.True(t, v.StaleHook)
	assert.Equal(t, "h1", v.Hook.ID)

	assert.True(t, HookFits(catalog.Hook{Category: "Learnings - Mistakes"}, engine.Mistake))
	assert.False(t, HookFits(testHook, engine.Mistake))
}

func TestReset(t *testing.T) {
	t.Parallel()
	cat := scenarioCatalog()
	s := New(cat)
	atScripts(t, s, normalStyle)
	require.True(t, s.SelectScript(mustScript(t, cat, "1"), 0))

	require.True(t, s.Reset())
	v := s.Snapshot()
	assert.Equal(t, StepStyle, v.Step)
	assert.Nil(t, v.Style)
	assert.Equal(t, 0, v.Filled)
	assert.Same(t, cat, s.Catalog())
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()
	s := New(scenarioCatalog())
	require.True(t, s.SelectStyle(normalStyle))

	v := s.Snapshot()
	v.Style.Title = "changed"
	assert.Equal(t, normalStyle.Title, s.Snapshot().Style.Title)
}

func TestStepNames(t *testing.T) {
	t.Parallel()
	for _, step := range Steps {
		parsed, err := ParseStep(step.String())
		require.NoError(t, err)
		assert.Equal(t, step, parsed)
		assert.True(t, step.Valid())
	}
	_, err := ParseStep("nope")
	assert.Error(t, err)
	assert.False(t, Step(9).Valid())
	assert.Equal(t, "Visual Style", StepStyle.Title())
}

// TestRandomIntents drives sessions with random intents and checks the
// selection invariants after every one of them.
func TestRandomIntents(t *testing.T) {
	t.Parallel()
	cat := catalog.Default()
	scripts := cat.Scripts()
	hooks := cat.Hooks()
	require.NotEmpty(t, hooks)
	rng := rand.New(rand.NewSource(7))

	reachedSummary := 0
	for _, style := range []catalog.Style{normalStyle, mistakeStyle} {
		for run := 0; run < 100; run++ {
			s := New(cat)
			require.True(t, s.SelectStyle(style))
			for i := 0; i < 80; i++ {
				before := s.Snapshot()
				var accepted bool
				switch rng.Intn(9) {
				case 0, 1, 2:
					accepted = s.SelectScript(scripts[rng.Intn(len(scripts))], rng.Intn(engine.SlotCount))
				case 3:
					accepted = s.RemoveScript(rng.Intn(engine.SlotCount))
				case 4:
					accepted = s.FocusSlot(rng.Intn(engine.SlotCount))
				case 5:
					accepted = s.SelectHook(hooks[rng.Intn(len(hooks))])
				case 6, 7:
					accepted = s.AdvanceStep()
				case 8:
					if rng.Intn(2) == 0 {
						accepted = s.RetreatStep()
					} else {
						accepted = s.JumpToStep(StepStyle)
					}
				}
				after := s.Snapshot()
				if !accepted {
					require.Equal(t, slotIDs(before), slotIDs(after))
					require.Equal(t, before.ActiveSlot, after.ActiveSlot)
					require.Equal(t, before.Step, after.Step)
				}
				if after.Step == StepSummary {
					reachedSummary++
				}
				checkInvariants(t, after)
			}
		}
	}
	assert.Positive(t, reachedSummary, "random runs never reached the summary step")
}

func checkInvariants(t *testing.T, v View) {
	t.Helper()

	seen := map[string]bool{}
	for _, s := range v.Slots {
		if s == nil {
			continue
		}
		require.False(t, seen[s.ID], "script %s assigned twice", s.ID)
		seen[s.ID] = true
	}
	if v.Slots[engine.SlotViral] != nil {
		require.Equal(t, engine.ViralType(v.Family), v.Slots[engine.SlotViral].Type)
	}
	if v.Slots[0] != nil && v.Slots[1] != nil {
		pair := engine.PairTypes(v.Family)
		require.ElementsMatch(t, pair[:], []catalog.ScriptType{v.Slots[0].Type, v.Slots[1].Type})
	}
	if v.Step > StepScripts {
		require.Equal(t, engine.SlotCount, v.Filled)
	}
	require.True(t, engine.InRange(v.ActiveSlot))
}
