package automation

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/analysis"
	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

var ErrUnknownAlgorithm = errors.New("automation: algorithm must be sort or search")

const (
	AlgorithmSort   = "sort"
	AlgorithmSearch = "search"
)

// Scenario is a scripted list of trace runs.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep selects a dataset preset and one algorithm run over it. An
// empty preset means the sample dataset.
type ScenarioStep struct {
	Algorithm string `yaml:"algorithm"`
	Field     string `yaml:"field"`
	Target    string `yaml:"target,omitempty"`
	Preset    string `yaml:"preset,omitempty"`
}

// StepResult carries the summary of one step; exactly one of Sort and
// Search is set.
type StepResult struct {
	Step   ScenarioStep
	Sort   *analysis.SortSummary
	Search *analysis.SearchSummary
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "automation: read scenario")
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, errors.Wrapf(err, "automation: parse %s", path)
	}
	return &scenario, nil
}

// RunScenario runs the steps in order, checking ctx between steps. Results
// of the steps completed before an error are returned with it.
func RunScenario(ctx context.Context, scenario *Scenario, log *zap.Logger) ([]StepResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("scenario", scenario.Name))
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		log.Info("running step",
			zap.Int("step", i+1),
			zap.Int("of", len(scenario.Steps)),
			zap.String("algorithm", step.Algorithm),
			zap.String("field", step.Field),
		)

		res, err := runStep(step)
		if err != nil {
			return results, errors.Wrapf(err, "step %d", i+1)
		}
		results = append(results, res)
	}
	return results, nil
}

func runStep(step ScenarioStep) (StepResult, error) {
	preset := step.Preset
	if preset == "" {
		preset = "sample"
	}
	items, err := inventory.Preset(preset)
	if err != nil {
		return StepResult{}, err
	}
	field, err := inventory.ParseField(step.Field)
	if err != nil {
		return StepResult{}, err
	}

	res := StepResult{Step: step}
	switch strings.ToLower(step.Algorithm) {
	case AlgorithmSort:
		s := analysis.SummarizeSort(trace.GenerateMergeSortSteps(items, field))
		res.Sort = &s
	case AlgorithmSearch:
		if !field.Textual() {
			return StepResult{}, errors.Newf("cannot binary search on %s", field)
		}
		s := analysis.SummarizeSearch(trace.GenerateBinarySearchSteps(items, step.Target, field))
		res.Search = &s
	default:
		return StepResult{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", step.Algorithm)
	}
	return res, nil
}

// FieldSweepResult is the merge sort cost of ordering one dataset by field.
type FieldSweepResult struct {
	Field   inventory.Field
	Summary analysis.SortSummary
}

// SweepFields sorts items by every field concurrently and reports each
// trace's summary in field order.
func SweepFields(ctx context.Context, items []inventory.Item, log *zap.Logger) ([]FieldSweepResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]FieldSweepResult, len(inventory.Fields))

	g, gctx := errgroup.WithContext(ctx)
	for i, field := range inventory.Fields {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s := analysis.SummarizeSort(trace.GenerateMergeSortSteps(items, field))
			results[i] = FieldSweepResult{Field: field, Summary: s}
			log.Debug("sweep", zap.Stringer("field", field), zap.Int("comparisons", s.Comparisons))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
