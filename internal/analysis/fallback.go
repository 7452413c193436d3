package analysis

import "mapmygap/internal/catalog"

// FallbackDetails is attached to every control when the AI path fails.
const FallbackDetails = "AI analysis failed. Default status assigned. Please review manually."

// FallbackResult builds a complete analysis from the catalog alone:
// every control of the framework marked as a gap, recommendations taken
// from the catalog defaults. Honors the same category filter as the
// prompt builder. This path performs no I/O and cannot fail.
func FallbackResult(fw *catalog.Framework, categories []string) []CategoryResult {
	cats := filterCategories(fw, categories)
	out := make([]CategoryResult, 0, len(cats))
	for _, c := range cats {
		cat := CategoryResult{
			Name:        c.Name,
			Description: c.Description,
			Results:     make([]ControlResult, 0, len(c.Controls)),
		}
		for _, ctl := range c.Controls {
			cat.Results = append(cat.Results, ControlResult{
				ID:             ctl.ID,
				Control:        ctl.Text,
				Status:         StatusGap,
				Details:        FallbackDetails,
				Recommendation: ctl.Recommendation,
			})
		}
		out = append(out, cat)
	}
	return out
}
