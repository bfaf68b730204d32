package viz

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/storage"
)

var paneNames = []string{"Items", "Merge Sort", "Binary Search"}

// Options configures NewApp. Zero values fall back to the sample dataset,
// name fields, the default speed and the real clock.
type Options struct {
	Items       []inventory.Item
	Store       *storage.Store
	Logger      *zap.Logger
	SortField   inventory.Field
	SearchField inventory.Field
	Target      string
	Speed       time.Duration
	Theme       string
	Clock       playback.Clock
}

// App is the Bubble Tea model for the whole program. Call Close after the
// program exits to stop both playback controllers.
type App struct {
	dataset *inventory.Dataset
	store   *storage.Store
	log     *zap.Logger

	pane   paneID
	items  itemsView
	sort   sortView
	search searchView

	keys     KeyMap
	help     help.Model
	showHelp bool
	theme    Theme

	status    string
	statusErr bool
	width     int
	height    int
}

func NewApp(opts Options) App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	items := opts.Items
	if items == nil {
		items = inventory.Sample()
	}
	if opts.SortField == "" {
		opts.SortField = inventory.Name
	}
	if opts.SearchField == "" || !opts.SearchField.Textual() {
		opts.SearchField = inventory.Name
	}
	if opts.Clock == nil {
		opts.Clock = playback.RealClock{}
	}
	ctlOpts := []playback.Option{
		playback.WithClock(opts.Clock),
		playback.WithLogger(log),
		playback.WithSpeed(opts.Speed),
	}

	m := App{
		dataset: inventory.NewDataset(items, log),
		store:   opts.Store,
		log:     log,
		pane:    sortPane,
		items:   newItemsView(),
		sort: sortView{
			player: player{pane: sortPane, ctl: playback.NewController("merge-sort", ctlOpts...)},
			field:  opts.SortField,
		},
		search: searchView{
			player: player{pane: searchPane, ctl: playback.NewController("binary-search", ctlOpts...)},
			field:  opts.SearchField,
			input:  newTargetInput(),
		},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  GetTheme(opts.Theme),
		width:  100,
		height: 30,
	}
	m.search.target = opts.Target
	m.search.input.SetValue(m.search.target)
	m.refresh()
	return m
}

// Close stops both controllers and any pending auto-advance.
func (m App) Close() {
	m.sort.ctl.Close()
	m.search.ctl.Close()
}

func (m App) Init() tea.Cmd {
	return tea.Batch(m.sort.listen(), m.search.listen())
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case playbackMsg:
		switch msg.pane {
		case sortPane:
			m.sort.sync()
			return m, m.sort.listen()
		case searchPane:
			m.search.sync()
			return m, m.search.listen()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.items.editing {
			return m.formKey(msg)
		}
		if m.search.input.Focused() {
			return m.targetKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.pane = (m.pane + 1) % paneID(len(paneNames))
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.pane = (m.pane + paneID(len(paneNames)) - 1) % paneID(len(paneNames))
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme)
		m.setStatus("theme: "+m.theme.Name, false)
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.pane {
	case itemsPane:
		return m.itemsKey(msg)
	case sortPane:
		if key.Matches(msg, m.keys.Field) {
			m.sort.cycleField(m.dataset.Items())
			m.setStatus("sorting by "+m.sort.field.String(), false)
			return m, nil
		}
		m.sort.handleKey(msg, m.keys)
	case searchPane:
		switch {
		case key.Matches(msg, m.keys.Field):
			m.search.cycleField(m.dataset.Items())
			m.setStatus("searching on "+m.search.field.String(), false)
			return m, nil
		case key.Matches(msg, m.keys.Target):
			m.search.input.SetValue("")
			return m, m.search.input.Focus()
		case key.Matches(msg, m.keys.Suggest):
			if m.search.nextSuggestion(m.dataset.Items()) {
				m.setStatus("searching for "+m.search.target, false)
			}
			return m, nil
		}
		m.search.handleKey(msg, m.keys)
	}
	return m, nil
}

func (m App) targetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.search.input.Blur()
		m.search.input.SetValue(m.search.target)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.search.input.Blur()
		m.search.setTarget(m.search.input.Value(), m.dataset.Items())
		return m, nil
	}
	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

func (m App) itemsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.items.openForm()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Delete):
		if m.dataset.Len() == 0 {
			return m, nil
		}
		removed, err := m.dataset.Delete(m.items.table.Cursor())
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.changed("deleted " + removed.Name)
		return m, nil
	case key.Matches(msg, m.keys.Restore):
		m.dataset.Reset()
		m.changed("dataset restored")
		return m, nil
	}
	var cmd tea.Cmd
	m.items.table, cmd = m.items.table.Update(msg)
	return m, cmd
}

func (m App) formKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.items.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.NextFormField):
		m.items.nextInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		it, err := m.items.formItem()
		if err == nil {
			err = m.dataset.Add(it)
		}
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.items.closeForm()
		m.changed("added " + strings.TrimSpace(it.Name))
		return m, nil
	}
	var cmd tea.Cmd
	f := m.items.focus
	m.items.form[f], cmd = m.items.form[f].Update(msg)
	return m, cmd
}

// changed persists the dataset and regenerates both traces.
func (m *App) changed(status string) {
	m.refresh()
	if m.store != nil {
		if _, err := m.store.Save(m.dataset.Items()); err != nil {
			m.log.Warn("dataset not saved", zap.Error(err))
			m.setStatus(status+" (not saved: "+err.Error()+")", true)
			return
		}
	}
	m.setStatus(status, false)
}

func (m *App) refresh() {
	items := m.dataset.Items()
	m.items.setItems(items)
	m.sort.regenerate(items)
	m.search.seed(items)
	m.search.regenerate(items)
}

func (m *App) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m App) View() string {
	var body string
	switch m.pane {
	case itemsPane:
		body = m.items.view(m.dataset.Len())
	case sortPane:
		body = m.sort.view(m.theme, m.width)
	case searchPane:
		body = m.search.view(m.theme, m.width, m.dataset.Items())
	}

	status := Subtle.Render(m.status)
	if m.statusErr {
		status = StatusError.Render(m.status)
	}

	m.help.ShowAll = m.showHelp
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTabs(paneNames, int(m.pane)),
		Separator(max(m.width, 20)),
		body,
		"",
		status,
		m.help.View(m.keys),
	)
}
