package viz

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/storage"
	"github.com/san-kum/algoviz/internal/trace"
)

// idleClock hands out timers that never fire.
type idleClock struct{}

type idleTimer struct{ c chan time.Time }

func (idleClock) NewTimer(time.Duration) playback.Timer { return idleTimer{c: make(chan time.Time)} }
func (t idleTimer) C() <-chan time.Time { return t.c }
func (t idleTimer) Stop() bool { return true }

func newTestApp(t *testing.T, opts Options) App {
	opts.Clock = idleClock{}
	opts.Logger = zaptest.NewLogger(t)
	app := NewApp(opts)
	t.Cleanup(app.Close)
	return app
}

func press(t *testing.T, m App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(App)
	}
	return m
}

func TestAppStartsOnSortView(t *testing.T) {
	m := newTestApp(t, Options{})
	assert.Equal(t, sortPane, m.pane)
	require.NotEmpty(t, m.sort.steps)
	assert.Equal(t, len(m.sort.steps), m.sort.state.Total)
	assert.Equal(t, "Monitor", m.search.target)
	assert.Equal(t, len(m.search.steps), m.search.state.Total)
	assert.Equal(t, playback.Ready, m.search.state.Status())
	assert.Contains(t, m.View(), "merge sort by")
}

func TestAppTransportKeys(t *testing.T) {
	m := newTestApp(t, Options{})

	m = press(t, m, "n", "n")
	assert.Equal(t, 2, m.sort.state.Index)

	m = press(t, m, " ")
	assert.True(t, m.sort.state.Playing)
	m = press(t, m, " ")
	assert.False(t, m.sort.state.Playing)

	m = press(t, m, "s")
	assert.Equal(t, playback.NextSpeed(playback.DefaultSpeed), m.sort.state.Speed)

	m = press(t, m, "r")
	assert.Equal(t, 0, m.sort.state.Index)
}

func TestAppFieldCycleRegenerates(t *testing.T) {
	m := newTestApp(t, Options{})
	m = press(t, m, "n", "n", "f")
	assert.Equal(t, inventory.Category, m.sort.field)
	assert.Equal(t, 0, m.sort.state.Index)
}

func TestAppSearchTarget(t *testing.T) {
	m := newTestApp(t, Options{})
	m = press(t, m, "tab")
	require.Equal(t, searchPane, m.pane)

	m = press(t, m, "/", "M", "o", "u", "s", "e", "enter")
	assert.Equal(t, "Mouse", m.search.target)
	require.NotEmpty(t, m.search.steps)
	last := m.search.steps[len(m.search.steps)-1]
	assert.Equal(t, trace.Found, last.Kind)
	assert.Equal(t, 0, m.search.state.Index)

	m = press(t, m, "/", "x", "esc")
	assert.Equal(t, "Mouse", m.search.target, "esc keeps the applied target")
}

func TestAppSearchTargetIsNotTrimmed(t *testing.T) {
	m := newTestApp(t, Options{Target: " Mouse"})
	assert.Equal(t, " Mouse", m.search.target)
	require.NotEmpty(t, m.search.steps)
	last := m.search.steps[len(m.search.steps)-1]
	assert.Equal(t, trace.NotFound, last.Kind)
	assert.Equal(t, trace.GenerateBinarySearchSteps(inventory.Sample(), " Mouse", inventory.Name), m.search.steps)
}

func TestAppSearchSuggestions(t *testing.T) {
	m := newTestApp(t, Options{})
	m = press(t, m, "tab")
	require.Equal(t, searchPane, m.pane)
	assert.Contains(t, m.View(), "[Monitor]")

	m = press(t, m, "c")
	assert.Equal(t, "Keyboard", m.search.target)
	m = press(t, m, "c", "c", "c", "c")
	assert.Equal(t, "Monitor", m.search.target, "cycling wraps around")

	m = press(t, m, "f")
	assert.Equal(t, inventory.Category, m.search.field)
	assert.Equal(t, "Monitor", m.search.target, "a set target survives a field change")
	m = press(t, m, "c")
	assert.Equal(t, "Periferal", m.search.target)
	require.NotEmpty(t, m.search.steps)
	assert.Equal(t, trace.Found, m.search.steps[len(m.search.steps)-1].Kind)
}

func TestAppSeedsBlankTargetAfterDatasetChange(t *testing.T) {
	m := newTestApp(t, Options{Items: []inventory.Item{}})
	assert.Empty(t, m.search.target)
	assert.Equal(t, playback.Idle, m.search.state.Status())

	require.NoError(t, m.dataset.Add(inventory.Item{Name: "Router", Category: "Jaringan", Stock: 2, Price: 400000}))
	m.refresh()
	assert.Equal(t, "Router", m.search.target)
	assert.Equal(t, playback.Ready, m.search.state.Status())
}

func TestSuggestions(t *testing.T) {
	items := inventory.Sample()
	assert.Equal(t, []string{"Monitor", "Keyboard", "Mouse", "Laptop", "Headset"}, suggestions(items, inventory.Name))
	assert.Equal(t, []string{"Periferal", "Komputer", "Audio"}, suggestions(items, inventory.Category))
	assert.Nil(t, suggestions(nil, inventory.Name))

	large, err := inventory.Preset("large")
	require.NoError(t, err)
	assert.Len(t, suggestions(large, inventory.Name), maxSuggestions)
}

func TestAppItemsMutations(t *testing.T) {
	st := storage.New(t.TempDir(), nil)
	m := newTestApp(t, Options{Store: st})
	m.pane = itemsPane

	m = press(t, m, "d")
	assert.Equal(t, 4, m.dataset.Len())
	assert.False(t, m.statusErr, m.status)

	saved, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, saved, 4)

	m = press(t, m, "a")
	require.True(t, m.items.editing)
	m = press(t, m, "U", "S", "B", "tab", "L", "a", "i", "n", "n", "y", "a", "tab", "3", "tab", "5", "0", "enter")
	assert.False(t, m.items.editing)
	assert.Equal(t, 5, m.dataset.Len())
	added := m.dataset.Items()[4]
	assert.Equal(t, inventory.Item{Name: "USB", Category: "Lainnya", Stock: 3, Price: 50}, added)

	m = press(t, m, "a", "enter")
	assert.True(t, m.items.editing, "invalid item keeps the form open")
	assert.True(t, m.statusErr)
	m = press(t, m, "esc", "R")
	assert.Equal(t, 5, m.dataset.Len())
	assert.Equal(t, "Monitor", m.dataset.Items()[0].Name)
}

func TestAppPlaybackMessageResyncs(t *testing.T) {
	m := newTestApp(t, Options{})
	m.sort.ctl.Step()
	next, cmd := m.Update(playbackMsg{pane: sortPane})
	m = next.(App)
	assert.Equal(t, 1, m.sort.state.Index)
	assert.NotNil(t, cmd)
}

func TestAppQuit(t *testing.T) {
	m := newTestApp(t, Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
