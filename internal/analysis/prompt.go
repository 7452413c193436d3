package analysis

import (
	"fmt"
	"strings"

	"mapmygap/internal/catalog"
)

const (
	// hard caps on how much document text reaches the model
	maxAnalysisDocChars = 8000
	maxControlDocChars  = 4000
)

// Truncate caps s at n characters. Exported for the handlers, which echo
// the excerpt back to the client.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// filterCategories returns the framework categories whose names are in
// wanted. Unknown names are ignored; an empty filter selects everything.
func filterCategories(fw *catalog.Framework, wanted []string) []catalog.Category {
	if len(wanted) == 0 {
		return fw.Categories
	}
	set := make(map[string]struct{}, len(wanted))
	for _, name := range wanted {
		set[strings.TrimSpace(name)] = struct{}{}
	}
	var out []catalog.Category
	for _, c := range fw.Categories {
		if _, ok := set[c.Name]; ok {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return fw.Categories
	}
	return out
}

// BuildAnalysisPrompt constructs the full gap-analysis prompt: a bounded
// document excerpt, the framework's category taxonomy, and strict output
// instructions so the model answers in the canonical JSON shape.
func BuildAnalysisPrompt(doc string, fw *catalog.Framework, categories []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a compliance analyst. Compare the policy document below against the %s framework.\n\n", fw.Name)

	b.WriteString("Assess coverage for each category listed here, and only these categories:\n")
	for _, c := range filterCategories(fw, categories) {
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Description)
		for _, ctl := range c.Controls {
			fmt.Fprintf(&b, "  - %s: %s\n", ctl.ID, ctl.Text)
		}
	}

	b.WriteString("\nRespond with exactly one JSON object of the form:\n")
	b.WriteString(`{"categories":[{"name":"...","description":"...","results":[{"id":"...","control":"...","status":"covered|partial|gap","details":"...","recommendation":"..."}]}]}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- status must be exactly one of: covered, partial, gap\n")
	b.WriteString("- every control listed above must appear once in results\n")
	b.WriteString("- details must cite the document language that supports the status\n")
	b.WriteString("- no prose outside the JSON object, no markdown fences\n")

	b.WriteString("\n--- POLICY DOCUMENT (excerpt) ---\n")
	b.WriteString(Truncate(doc, maxAnalysisDocChars))

	return b.String()
}

// BuildControlTextPrompt constructs the prompt for drafting policy
// language for a single control.
func BuildControlTextPrompt(doc, controlText string, fw *catalog.Framework) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a policy writer. Draft policy language satisfying this %s control:\n\n", fw.Name)
	fmt.Fprintf(&b, "%s\n\n", controlText)
	b.WriteString("Structure the draft with these sections: Purpose, Scope, Standard, Procedures.\n")
	b.WriteString("Match the tone and terminology of the organization's existing document below. Plain text only, no markdown fences.\n")

	b.WriteString("\n--- EXISTING DOCUMENT (excerpt) ---\n")
	b.WriteString(Truncate(doc, maxControlDocChars))

	return b.String()
}
