package analysis

import "math"

// Score walks the category tree once and derives the summary. Always
// computed from scratch so the summary can never drift from the results
// it describes.
func Score(cats []CategoryResult) Summary {
	var s Summary
	for _, c := range cats {
		for _, r := range c.Results {
			switch r.Status {
			case StatusCovered:
				s.Covered++
			case StatusPartial:
				s.Partial++
			case StatusGap:
				s.Gaps++
			}
		}
	}
	s.Total = s.Covered + s.Partial + s.Gaps
	if s.Total > 0 {
		s.Score = int(math.Round((float64(s.Covered) + 0.5*float64(s.Partial)) / float64(s.Total) * 100))
	}
	return s
}
