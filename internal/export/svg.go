package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/viz"
)

var cardFill = map[viz.CardState]string{
	viz.CardDefault:    "#1e1e2e",
	viz.CardComparing:  "#ffcc00",
	viz.CardActive:     "#0077be",
	viz.CardFound:      "#00c060",
	viz.CardEliminated: "#333340",
	viz.CardSorted:     "#00c060",
}

const (
	boxWidth  = 120
	boxHeight = 56
	boxGap    = 8
)

// SearchStepSVG draws one binary search frame as a strip of boxes coloured
// by card state, with the searched field's value in each box.
func SearchStepSVG(step trace.SearchStep, field inventory.Field) string {
	n := len(step.Array)
	width := max(n*(boxWidth+boxGap)+boxGap, 2*boxGap)
	height := boxHeight + 2*boxGap + 24

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g font-family="monospace" font-size="12">
`, width, height, width, height)

	for i, it := range step.Array {
		state := viz.SearchCardState(step, i)
		x := boxGap + i*(boxWidth+boxGap)
		text := "#ffffff"
		if state == viz.CardComparing {
			text = "#000000"
		}
		fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="%d" height="%d" rx="6" fill="%s" data-state="%s"/>
`, x, boxGap, boxWidth, boxHeight, cardFill[state], state)
		fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="%s">#%d %s</text>
`, x+8, boxGap+22, text, i, html.EscapeString(field.Format(it)))
		if i == step.Mid {
			fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="#ffcc00">mid</text>
`, x+8, boxGap+44)
		}
	}

	fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="#aaaaaa">%s</text>
`, boxGap, height-10, html.EscapeString(step.Description))
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesSVG plots integer samples as a polyline, e.g. a search window size
// per step. Fewer than two samples yield "".
func SeriesSVG(values []int, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	top := 1
	for _, v := range values {
		top = max(top, v)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	pad := float64(height) * 0.1
	usable := float64(height) - 2*pad
	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - pad - float64(v)/float64(top)*usable
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
