package analysis

import "github.com/guptarohit/asciigraph"

// Plot renders values as an ASCII line chart. An empty series plots as a
// flat zero line.
func Plot(values []int, caption string) string {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	if len(data) == 0 {
		data = []float64{0}
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption(caption),
	)
}
