package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/inventory"
	"github.com/san-kum/algoviz/internal/trace"
)

func TestSortTraceJSON(t *testing.T) {
	doc := NewSortTrace(inventory.Sample(), inventory.Price)
	_, err := uuid.Parse(doc.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "merge-sort", decoded["algorithm"])
	assert.Equal(t, "price", decoded["field"])
	steps, ok := decoded["steps"].([]any)
	require.True(t, ok)
	assert.Len(t, steps, len(doc.Steps))
	assert.Equal(t, "initial", steps[0].(map[string]any)["kind"])
}

func TestSearchTraceJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.json")
	doc := NewSearchTrace(inventory.Sample(), "Laptop", inventory.Name)
	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded SearchTraceJSON
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc.ID, decoded.ID)
	assert.Equal(t, "Laptop", decoded.Target)
	assert.True(t, decoded.Summary.Found)
	assert.Equal(t, doc.Steps, decoded.Steps)
}

func TestSearchStepSVG(t *testing.T) {
	steps := trace.GenerateBinarySearchSteps(inventory.Sample(), "Mouse", inventory.Name)
	require.NotEmpty(t, steps)
	last := steps[len(steps)-1]

	svg := SearchStepSVG(last, inventory.Name)
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 5, strings.Count(svg, "<rect x="))
	assert.Contains(t, svg, `data-state="found"`)
	assert.Equal(t, 4, strings.Count(svg, `data-state="eliminated"`))
}

func TestSearchStepSVGEscapes(t *testing.T) {
	step := trace.SearchStep{
		Array:       []inventory.Item{{Name: "A<B", Category: "Lainnya"}},
		Mid:         0,
		High:        0,
		Description: `"quoted" & more`,
	}
	svg := SearchStepSVG(step, inventory.Name)
	assert.Contains(t, svg, "A&lt;B")
	assert.NotContains(t, svg, "A<B")
}

func TestSeriesSVG(t *testing.T) {
	assert.Empty(t, SeriesSVG([]int{3}, 100, 50, "#fff"))
	svg := SeriesSVG([]int{5, 3, 1, 0}, 100, 50, "#00ff00")
	assert.Contains(t, svg, `stroke="#00ff00"`)
	assert.Equal(t, 3, strings.Count(svg, " L"))
}
