package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

type sortView struct {
	player
	field inventory.Field
	steps []trace.SortStep
}

func (v *sortView) regenerate(items []inventory.Item) {
	v.steps = trace.GenerateMergeSortSteps(items, v.field)
	v.generate(len(v.steps))
}

func (v *sortView) cycleField(items []inventory.Item) {
	v.field = nextField(inventory.Fields, v.field)
	v.regenerate(items)
}

// current is the step under the playhead, or false for an empty trace.
func (v *sortView) current() (trace.SortStep, bool) {
	if len(v.steps) == 0 || v.state.Index >= len(v.steps) {
		return trace.SortStep{}, false
	}
	return v.steps[v.state.Index], true
}

func (v *sortView) view(theme Theme, width int) string {
	var b strings.Builder
	b.WriteString(MetricLabel.Render("merge sort by ") + MetricValue.Render(v.field.String()))
	b.WriteString("\n")
	b.WriteString(v.statusLine(width))
	b.WriteString("\n\n")

	step, ok := v.current()
	if !ok {
		b.WriteString(Subtle.Render("The dataset is empty. Add items on the Items view."))
		return b.String()
	}

	b.WriteString(Narration.Render(fmt.Sprintf("[%s · level %d] %s", step.Kind, step.Level, step.Description)))
	b.WriteString("\n\n")

	last := v.state.Index == len(v.steps)-1
	perRow := max(1, width/(cardWidth+4))
	for a, arr := range step.Arrays {
		if len(step.Arrays) > 1 {
			label := "Left"
			if a == 1 {
				label = "Right"
			}
			b.WriteString(Subtle.Render(label + " array"))
			b.WriteString("\n")
		}
		cards := make([]string, len(arr))
		for i, it := range arr {
			cards[i] = theme.RenderCard(it, i, v.field, SortCardState(step, a, i, last))
		}
		b.WriteString(RenderRow(cards, perRow))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().MaxWidth(max(width, 20)).Render(b.String())
}

func nextField(fields []inventory.Field, f inventory.Field) inventory.Field {
	for i, x := range fields {
		if x == f {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}
