package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/algoviz/internal/analysis"
	"github.com/san-kum/algoviz/internal/automation"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/trace"
	"github.com/san-kum/algoviz/internal/tui"
)

func runSort(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	field := cfg.SortField()
	steps := trace.GenerateMergeSortSteps(items, field)
	logger.Debug("sort trace generated", zap.Stringer("field", field), zap.Int("steps", len(steps)))

	if live {
		r := tui.NewLiveRenderer(os.Stdout, "merge sort by "+field.String(), field)
		return playLive(r, len(steps), func(i int) { r.RenderSort(steps[i], i, len(steps)) })
	}
	if len(steps) == 0 {
		fmt.Println("dataset is empty")
		return nil
	}
	for i, s := range steps {
		groups := make([]string, len(s.Arrays))
		for a, arr := range s.Arrays {
			groups[a] = "[" + strings.Join(inventory.Names(arr), " ") + "]"
		}
		fmt.Printf("%3d  %-8s L%d  %-40s %s\n", i+1, s.Kind, s.Level, strings.Join(groups, " "), s.Description)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	field, target := cfg.SearchField(), args[0]
	steps := trace.GenerateBinarySearchSteps(items, target, field)
	logger.Debug("search trace generated", zap.Stringer("field", field), zap.String("target", target), zap.Int("steps", len(steps)))

	if live {
		r := tui.NewLiveRenderer(os.Stdout, fmt.Sprintf("binary search %s=%q", field, target), field)
		return playLive(r, len(steps), func(i int) { r.RenderSearch(steps[i], i, len(steps)) })
	}
	if len(steps) == 0 {
		fmt.Println("nothing to search: empty dataset or blank target")
		return nil
	}
	fmt.Printf("sorted by %s: %s\n", field, strings.Join(inventory.Names(steps[0].Array), ", "))
	for i, s := range steps {
		fmt.Printf("%3d  %-15s low=%-2d high=%-2d mid=%-2d  %s\n", i+1, s.Kind, s.Low, s.High, s.Mid, s.Description)
	}
	return nil
}

// playLive runs a real controller at the configured speed until the last
// frame or an interrupt.
func playLive(r *tui.LiveRenderer, total int, frame func(int)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctl := playback.NewController("live",
		playback.WithSpeed(cfg.Speed()),
		playback.WithLogger(logger),
	)
	defer ctl.Close()

	r.Start()
	defer r.Stop()
	err := tui.Play(ctx, ctl, total, frame)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runFind(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	matches := inventory.FindAll(items, args[0], cfg.SearchField())
	if len(matches) == 0 {
		fmt.Printf("no item with %s = %q\n", cfg.SearchField(), args[0])
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Name", "Category", "Stock", "Price"})
	for _, m := range matches {
		table.Append(itemRow(m.Index, m.Item))
	}
	table.Render()
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	switch args[0] {
	case "sort":
		return export.WriteFile(outPath, export.NewSortTrace(items, cfg.SortField()))
	case "search":
		if len(args) < 2 {
			return errors.New("search needs a target")
		}
		doc := export.NewSearchTrace(items, args[1], cfg.SearchField())
		if err := export.WriteFile(outPath, doc); err != nil {
			return err
		}
		if svgPath != "" && len(doc.Steps) > 0 {
			svg := export.SearchStepSVG(doc.Steps[len(doc.Steps)-1], doc.Field)
			if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
				return errors.Wrap(err, "write svg")
			}
			logger.Info("svg written", zap.String("path", svgPath))
		}
		return nil
	}
	return errors.Newf("unknown trace %q (want sort or search)", args[0])
}

func plotTrace(cmd *cobra.Command, args []string) error {
	items, err := loadItems(cmd)
	if err != nil {
		return err
	}
	switch args[0] {
	case "sort":
		steps := trace.GenerateMergeSortSteps(items, cfg.SortField())
		s := analysis.SummarizeSort(steps)
		fmt.Println(analysis.Plot(analysis.ComparisonSeries(steps), "comparisons per recursion level"))
		fmt.Printf("\nsteps=%d divides=%d comparisons=%d merges=%d depth=%d\n", s.Steps, s.Divides, s.Comparisons, s.Merges, s.MaxDepth)
		return nil
	case "search":
		if len(args) < 2 {
			return errors.New("search needs a target")
		}
		steps := trace.GenerateBinarySearchSteps(items, args[1], cfg.SearchField())
		s := analysis.SummarizeSearch(steps)
		fmt.Println(analysis.Plot(analysis.WindowSeries(steps), "items left in [low, high] per step"))
		fmt.Printf("\nsteps=%d checks=%d eliminated=%d found=%t index=%d\n", s.Steps, s.Checks, s.Eliminated, s.Found, s.FoundIndex)
		return nil
	}
	return errors.Newf("unknown trace %q (want sort or search)", args[0])
}

func runScenario(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if sweep {
		items, err := loadItems(cmd)
		if err != nil {
			return err
		}
		results, err := automation.SweepFields(ctx, items, logger)
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Field", "Steps", "Comparisons", "Merges", "Depth"})
		for _, r := range results {
			table.Append([]string{
				r.Field.String(),
				fmt.Sprint(r.Summary.Steps),
				fmt.Sprint(r.Summary.Comparisons),
				fmt.Sprint(r.Summary.Merges),
				fmt.Sprint(r.Summary.MaxDepth),
			})
		}
		table.Render()
		return nil
	}

	if len(args) == 0 {
		return errors.New("scenario file required unless --sweep is set")
	}
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	results, err := automation.RunScenario(ctx, scenario, logger)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Algorithm", "Preset", "Field", "Target", "Steps", "Result"})
	for i, r := range results {
		row := []string{fmt.Sprint(i + 1), r.Step.Algorithm, r.Step.Preset, r.Step.Field, r.Step.Target}
		switch {
		case r.Sort != nil:
			row = append(row, fmt.Sprint(r.Sort.Steps), fmt.Sprintf("%d comparisons", r.Sort.Comparisons))
		case r.Search != nil:
			outcome := "not found"
			if r.Search.Found {
				outcome = fmt.Sprintf("found at %d", r.Search.FoundIndex)
			}
			row = append(row, fmt.Sprint(r.Search.Steps), outcome)
		}
		table.Append(row)
	}
	table.Render()
	return err
}
