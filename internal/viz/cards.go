package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

// CardState is how an item is highlighted in the current frame.
type CardState int

const (
	CardDefault CardState = iota
	CardComparing
	CardActive
	CardFound
	CardEliminated
	CardSorted
)

func (c CardState) String() string {
	switch c {
	case CardComparing:
		return "comparing"
	case CardActive:
		return "active"
	case CardFound:
		return "found"
	case CardEliminated:
		return "eliminated"
	case CardSorted:
		return "sorted"
	}
	return "default"
}

// SortCardState classifies item idx of step.Arrays[array]. On the final
// frame every card is sorted.
func SortCardState(step trace.SortStep, array, idx int, last bool) CardState {
	if last {
		return CardSorted
	}
	if c := step.Comparing; c != nil && array < 2 && c[array] == idx {
		return CardComparing
	}
	return CardDefault
}

// SearchCardState classifies item idx of step.Array:
// eliminated, then found, then the midpoint, then the live window.
func SearchCardState(step trace.SearchStep, idx int) CardState {
	switch {
	case step.IsEliminated(idx):
		return CardEliminated
	case step.Found && idx == step.Mid:
		return CardFound
	case idx == step.Mid:
		return CardComparing
	case step.InRange(idx):
		return CardActive
	}
	return CardDefault
}

const cardWidth = 18

func (t Theme) cardStyle(state CardState) lipgloss.Style {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(cardWidth).
		Padding(0, 1)
	switch state {
	case CardComparing:
		return base.BorderForeground(t.Warning).Foreground(t.Warning).Bold(true)
	case CardActive:
		return base.BorderForeground(t.Primary).Foreground(t.Text)
	case CardFound, CardSorted:
		return base.BorderForeground(t.Success).Foreground(t.Success).Bold(true)
	case CardEliminated:
		return base.BorderForeground(t.Muted).Foreground(t.Muted).Faint(true)
	}
	return base.BorderForeground(t.Muted).Foreground(t.Text)
}

// RenderCard draws one item card; field picks the highlighted attribute.
func (t Theme) RenderCard(it inventory.Item, idx int, field inventory.Field, state CardState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n", idx, truncate(it.Name, cardWidth-4))
	fmt.Fprintf(&b, "%s\n", truncate(it.Category, cardWidth-2))
	fmt.Fprintf(&b, "stok %d\n", it.Stock)
	b.WriteString(truncate(inventory.FormatPrice(it.Price), cardWidth-2))
	if field != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Render("▸ " + truncate(field.Format(it), cardWidth-4)))
	}
	return t.cardStyle(state).Render(b.String())
}

// RenderRow joins cards horizontally, wrapping after perRow cards.
func RenderRow(cards []string, perRow int) string {
	if len(cards) == 0 {
		return Subtle.Render("(no items)")
	}
	if perRow < 1 {
		perRow = 1
	}
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
