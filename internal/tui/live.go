package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/viz"
)

const (
	width       = 70
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	reset       = "\033[0m"
)

var stateColor = map[viz.CardState]string{
	viz.CardDefault:    "",
	viz.CardComparing:  "\033[1;33m",
	viz.CardActive:     "\033[36m",
	viz.CardFound:      "\033[1;32m",
	viz.CardEliminated: "\033[2m",
	viz.CardSorted:     "\033[32m",
}

// LiveRenderer draws trace frames as plain ANSI text, one full-screen frame
// per step. Clear turns off the screen clearing, for logs and tests.
type LiveRenderer struct {
	w     io.Writer
	title string
	field inventory.Field
	Clear bool
	Color bool
}

func NewLiveRenderer(w io.Writer, title string, field inventory.Field) *LiveRenderer {
	return &LiveRenderer{w: w, title: title, field: field, Clear: true, Color: true}
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.w, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.w, showCursor) }

func (r *LiveRenderer) header(b *strings.Builder, kind string, index, total int) {
	if r.Clear {
		b.WriteString(clearScreen)
	}
	fmt.Fprintf(b, "  %s  [%s]  step %d/%d\n", r.title, kind, index+1, total)
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
}

func (r *LiveRenderer) card(it inventory.Item, idx int, state viz.CardState) string {
	text := fmt.Sprintf("[%d %s=%s]", idx, r.field, r.field.Format(it))
	if !r.Color || stateColor[state] == "" {
		if state != viz.CardDefault && !r.Color {
			return text + "(" + state.String() + ")"
		}
		return text
	}
	return stateColor[state] + text + reset
}

// RenderSort draws step index of total; the last step marks every card sorted.
func (r *LiveRenderer) RenderSort(step trace.SortStep, index, total int) {
	var b strings.Builder
	r.header(&b, string(step.Kind), index, total)
	last := index == total-1
	for a, arr := range step.Arrays {
		cards := make([]string, len(arr))
		for i, it := range arr {
			cards[i] = r.card(it, i, viz.SortCardState(step, a, i, last))
		}
		label := "   "
		if len(step.Arrays) > 1 {
			label = [2]string{" L ", " R "}[min(a, 1)]
		}
		b.WriteString(" " + label + strings.Join(cards, " ") + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprintf(&b, "  %s\n", step.Description)
	fmt.Fprint(r.w, b.String())
}

func (r *LiveRenderer) RenderSearch(step trace.SearchStep, index, total int) {
	var b strings.Builder
	r.header(&b, string(step.Kind), index, total)
	cards := make([]string, len(step.Array))
	for i, it := range step.Array {
		cards[i] = r.card(it, i, viz.SearchCardState(step, i))
	}
	b.WriteString("    " + strings.Join(cards, " ") + "\n")
	fmt.Fprintf(&b, "    low=%d high=%d mid=%d eliminated=%v\n", step.Low, step.High, step.Mid, step.Eliminated)
	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	fmt.Fprintf(&b, "  %s\n", step.Description)
	fmt.Fprint(r.w, b.String())
}

// Play drives ctl through a trace of total steps, calling frame once for
// every index up to the last, until the last step is shown or ctx is done.
func Play(ctx context.Context, ctl *playback.Controller, total int, frame func(index int)) error {
	state := ctl.Generate(total)
	if total == 0 {
		return nil
	}
	frame(state.Index)
	shown := state.Index
	state = ctl.Play()

	for {
		switch {
		case state.Index > shown:
			// Updates keeps only the newest state, so catch up on any
			// frames published while the previous one was drawn.
			for i := shown + 1; i <= state.Index; i++ {
				frame(i)
			}
		case state.Index < shown:
			frame(state.Index)
		}
		shown = state.Index
		if !state.Playing && state.AtEnd() {
			return nil
		}
		select {
		case <-ctx.Done():
			ctl.Pause()
			return ctx.Err()
		case s, ok := <-ctl.Updates():
			if !ok {
				return nil
			}
			state = s
		}
	}
}
