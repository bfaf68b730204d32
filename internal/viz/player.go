package viz

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algoviz/internal/playback"
)

type paneID int

const (
	itemsPane paneID = iota
	sortPane
	searchPane
)

// playbackMsg signals that a controller published a new state.
type playbackMsg struct{ pane paneID }

// player binds a playback controller to one pane.
type player struct {
	pane  paneID
	ctl   *playback.Controller
	state playback.State
}

// listen waits for the controller's next published state. The returned
// command yields nil once the controller is closed.
func (p *player) listen() tea.Cmd {
	updates := p.ctl.Updates()
	pane := p.pane
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return nil
		}
		return playbackMsg{pane: pane}
	}
}

// sync re-reads the controller; published states may be older than a
// synchronous reply the pane already holds.
func (p *player) sync() { p.state = p.ctl.Snapshot() }

// handleKey applies transport keys and reports whether msg was one.
func (p *player) handleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.Play):
		p.state = p.ctl.Toggle()
	case key.Matches(msg, keys.Step):
		p.state = p.ctl.Step()
	case key.Matches(msg, keys.Reset):
		p.state = p.ctl.Reset()
	case key.Matches(msg, keys.Speed):
		p.state = p.ctl.SetSpeed(playback.NextSpeed(p.state.Speed))
	default:
		return false
	}
	return true
}

func (p *player) generate(total int) { p.state = p.ctl.Generate(total) }

func (p *player) statusLine(width int) string {
	s := p.state
	if s.Total == 0 {
		return StatusBadge(s.Status().String()) + "  " + Subtle.Render("nothing to show")
	}
	return fmt.Sprintf("%s  %s %s  %s %s  %s",
		StatusBadge(s.Status().String()),
		MetricLabel.Render("step"), MetricValue.Render(fmt.Sprintf("%d/%d", s.Index+1, s.Total)),
		MetricLabel.Render("speed"), MetricValue.Render(playback.SpeedLabel(s.Speed)),
		ProgressBar(s.Progress(), max(10, width/4)),
	)
}
