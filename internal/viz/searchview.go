package viz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

type searchView struct {
	player
	field  inventory.Field
	target string
	input  textinput.Model
	steps  []trace.SearchStep
}

func newTargetInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "target, e.g. Mouse"
	ti.CharLimit = inventory.MaxNameLen
	ti.Width = 30
	ti.Prompt = "search ▸ "
	return ti
}

const maxSuggestions = 6

// suggestions lists quick-pick targets: item names in dataset order, or
// each category once in first-seen order.
func suggestions(items []inventory.Item, field inventory.Field) []string {
	var out []string
	for _, it := range items {
		s := field.Text(it)
		if s == "" || (field == inventory.Category && slices.Contains(out, s)) {
			continue
		}
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// seed fills a blank target with the first suggestion.
func (v *searchView) seed(items []inventory.Item) {
	if strings.TrimSpace(v.target) != "" {
		return
	}
	if s := suggestions(items, v.field); len(s) > 0 {
		v.target = s[0]
		v.input.SetValue(v.target)
	}
}

// nextSuggestion moves the target to the suggestion after the current one.
func (v *searchView) nextSuggestion(items []inventory.Item) bool {
	s := suggestions(items, v.field)
	if len(s) == 0 {
		return false
	}
	i := slices.Index(s, v.target)
	v.setTarget(s[(i+1)%len(s)], items)
	return true
}

func (v *searchView) regenerate(items []inventory.Item) {
	v.steps = trace.GenerateBinarySearchSteps(items, v.target, v.field)
	v.generate(len(v.steps))
}

func (v *searchView) cycleField(items []inventory.Item) {
	v.field = nextField(inventory.SearchFields, v.field)
	v.seed(items)
	v.regenerate(items)
}

func (v *searchView) setTarget(target string, items []inventory.Item) {
	v.target = target
	v.input.SetValue(target)
	v.regenerate(items)
}

func (v *searchView) current() (trace.SearchStep, bool) {
	if len(v.steps) == 0 || v.state.Index >= len(v.steps) {
		return trace.SearchStep{}, false
	}
	return v.steps[v.state.Index], true
}

func (v *searchView) suggestionLine(items []inventory.Item) string {
	s := suggestions(items, v.field)
	if len(s) == 0 {
		return ""
	}
	chips := make([]string, len(s))
	for i, t := range s {
		if t == v.target {
			chips[i] = MetricValue.Render("[" + t + "]")
		} else {
			chips[i] = Subtle.Render(t)
		}
	}
	return MetricLabel.Render("try ") + strings.Join(chips, " ")
}

func (v *searchView) view(theme Theme, width int, items []inventory.Item) string {
	var b strings.Builder
	b.WriteString(MetricLabel.Render("binary search on ") + MetricValue.Render(v.field.String()))
	b.WriteString("\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")
	if line := v.suggestionLine(items); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(v.statusLine(width))
	b.WriteString("\n\n")

	step, ok := v.current()
	switch {
	case ok:
	case strings.TrimSpace(v.target) == "":
		b.WriteString(Subtle.Render("Press / and type a target to search for."))
		return b.String()
	default:
		b.WriteString(Subtle.Render("The dataset is empty. Add items on the Items view."))
		return b.String()
	}

	window := "-"
	if step.Low <= step.High {
		window = fmt.Sprintf("[%d..%d]", step.Low, step.High)
	}
	fmt.Fprintf(&b, "%s %s  %s %d  %s %d\n",
		MetricLabel.Render("window"), MetricValue.Render(window),
		MetricLabel.Render("mid"), step.Mid,
		MetricLabel.Render("eliminated"), len(step.Eliminated))
	b.WriteString(Narration.Render(fmt.Sprintf("[%s] %s", step.Kind, step.Description)))
	b.WriteString("\n\n")

	cards := make([]string, len(step.Array))
	for i, it := range step.Array {
		card := theme.RenderCard(it, i, v.field, SearchCardState(step, i))
		if i == step.Mid && !step.Found {
			card = lipgloss.JoinVertical(lipgloss.Center, lipgloss.NewStyle().Foreground(theme.Warning).Render("▼ mid"), card)
		}
		cards[i] = card
	}
	b.WriteString(RenderRow(cards, max(1, width/(cardWidth+4))))
	return lipgloss.NewStyle().MaxWidth(max(width, 20)).Render(b.String())
}
