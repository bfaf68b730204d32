package export

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/analysis"
	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

// SortTraceJSON is the exported form of one merge sort run.
type SortTraceJSON struct {
	ID        string               `json:"id"`
	Algorithm string               `json:"algorithm"`
	Field     inventory.Field      `json:"field"`
	CreatedAt time.Time            `json:"created_at"`
	Items     []inventory.Item     `json:"items"`
	Summary   analysis.SortSummary `json:"summary"`
	Steps     []trace.SortStep     `json:"steps"`
}

// SearchTraceJSON is the exported form of one binary search run.
type SearchTraceJSON struct {
	ID        string                 `json:"id"`
	Algorithm string                 `json:"algorithm"`
	Field     inventory.Field        `json:"field"`
	Target    string                 `json:"target"`
	CreatedAt time.Time              `json:"created_at"`
	Items     []inventory.Item       `json:"items"`
	Summary   analysis.SearchSummary `json:"summary"`
	Steps     []trace.SearchStep     `json:"steps"`
}

func NewSortTrace(items []inventory.Item, field inventory.Field) SortTraceJSON {
	steps := trace.GenerateMergeSortSteps(items, field)
	return SortTraceJSON{
		ID:        uuid.NewString(),
		Algorithm: "merge-sort",
		Field:     field,
		CreatedAt: time.Now().UTC(),
		Items:     items,
		Summary:   analysis.SummarizeSort(steps),
		Steps:     steps,
	}
}

func NewSearchTrace(items []inventory.Item, target string, field inventory.Field) SearchTraceJSON {
	steps := trace.GenerateBinarySearchSteps(items, target, field)
	return SearchTraceJSON{
		ID:        uuid.NewString(),
		Algorithm: "binary-search",
		Field:     field,
		Target:    target,
		CreatedAt: time.Now().UTC(),
		Items:     items,
		Summary:   analysis.SummarizeSearch(steps),
		Steps:     steps,
	}
}

// Write encodes doc as indented JSON.
func Write(w io.Writer, doc any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "export: encode")
}

// WriteFile writes doc to path; "" or "-" means stdout.
func WriteFile(path string, doc any) error {
	if path == "" || path == "-" {
		return Write(os.Stdout, doc)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "export: create")
	}
	if err := Write(file, doc); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "export: close")
}
