package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"skyglance/internal/ui/input/types"
)

type fakeContext struct {
	loading    bool
	candidates bool
	weather    bool
	err        bool
}

func (c fakeContext) Loading() bool           { return c.loading }
func (c fakeContext) ShowingCandidates() bool { return c.candidates }
func (c fakeContext) HasWeatherData() bool    { return c.weather }
func (c fakeContext) HasError() bool          { return c.err }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPrintableKeysGoToSearchField(t *testing.T) {
	h := New()
	actions, consumed := h.HandleKey(runes("q"), fakeContext{weather: true})
	assert.False(t, consumed)
	assert.Empty(t, actions)

	_, consumed = h.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace}, fakeContext{})
	assert.False(t, consumed)
}

func TestQuitAlwaysWorks(t *testing.T) {
	h := New()
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		actions, consumed := h.HandleKey(msg, fakeContext{loading: true})
		assert.True(t, consumed)
		assert.Equal(t, []types.Action{types.QuitAction{}}, actions)
	}
}

func TestLoadingSwallowsEverythingElse(t *testing.T) {
	h := New()
	for _, msg := range []tea.KeyMsg{runes("L"), {Type: tea.KeyEnter}, {Type: tea.KeyDown}, {Type: tea.KeyCtrlR}} {
		actions, consumed := h.HandleKey(msg, fakeContext{loading: true, candidates: true})
		assert.True(t, consumed)
		assert.Empty(t, actions)
	}
}

func TestCandidateNavigation(t *testing.T) {
	h := New()
	ctx := fakeContext{candidates: true}

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyDown}, ctx)
	assert.Equal(t, []types.Action{types.MoveHighlightAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyUp}, ctx)
	assert.Equal(t, []types.Action{types.MoveHighlightAction{Delta: -1}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	assert.Equal(t, []types.Action{types.SelectCandidateAction{}}, actions)

	actions, consumed := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, fakeContext{})
	assert.True(t, consumed)
	assert.Empty(t, actions)
}

func TestDetailsAndDismissNeedState(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlD}, fakeContext{})
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlD}, fakeContext{weather: true})
	assert.Equal(t, []types.Action{types.ShowDetailsAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlE}, fakeContext{})
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlE}, fakeContext{err: true})
	assert.Equal(t, []types.Action{types.DismissErrorAction{}}, actions)
}

func TestHelpBindings(t *testing.T) {
	k := DefaultKeyMap()
	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 3)
}
