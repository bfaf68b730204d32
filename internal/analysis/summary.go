package analysis

import "github.com/san-kum/algoviz/internal/trace"

type SortSummary struct {
	Steps       int `json:"steps"`
	Divides     int `json:"divides"`
	Comparisons int `json:"comparisons"`
	Merges      int `json:"merges"`
	MaxDepth    int `json:"max_depth"`
}

func SummarizeSort(steps []trace.SortStep) SortSummary {
	s := SortSummary{Steps: len(steps)}
	for _, st := range steps {
		switch st.Kind {
		case trace.Divide:
			s.Divides++
		case trace.Compare:
			s.Comparisons++
		case trace.Merge:
			s.Merges++
		}
		s.MaxDepth = max(s.MaxDepth, st.Level)
	}
	return s
}

// SearchSummary describes a search trace. Checks counts every midpoint
// inspected, including the one that found the target. FoundIndex is -1
// unless Found.
type SearchSummary struct {
	Steps      int  `json:"steps"`
	Checks     int  `json:"checks"`
	Eliminated int  `json:"eliminated"`
	Found      bool `json:"found"`
	FoundIndex int  `json:"found_index"`
}

func SummarizeSearch(steps []trace.SearchStep) SearchSummary {
	s := SearchSummary{Steps: len(steps), FoundIndex: -1}
	for _, st := range steps {
		switch st.Kind {
		case trace.Check:
			s.Checks++
		case trace.Found:
			s.Checks++
			s.Found = true
			s.FoundIndex = st.Mid
		}
	}
	if len(steps) > 0 {
		s.Eliminated = len(steps[len(steps)-1].Eliminated)
	}
	return s
}

// WindowSeries returns, per step, how many indices remain in [Low, High].
func WindowSeries(steps []trace.SearchStep) []int {
	out := make([]int, len(steps))
	for i, st := range steps {
		if st.High >= st.Low {
			out[i] = st.High - st.Low + 1
		}
	}
	return out
}

// ComparisonSeries returns the number of compare steps at each recursion
// level, indexed by level.
func ComparisonSeries(steps []trace.SortStep) []int {
	var out []int
	for _, st := range steps {
		if st.Kind != trace.Compare {
			continue
		}
		for len(out) <= st.Level {
			out = append(out, 0)
		}
		out[st.Level]++
	}
	return out
}
