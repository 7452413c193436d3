package analysis

import (
	"fmt"
	"strings"
)

// CleanGeneratedText strips markdown fences the model sometimes wraps
// around drafted policy text despite instructions.
func CleanGeneratedText(raw string) string {
	return stripFences(raw)
}

// FallbackControlText drafts policy language from local string
// interpolation only. Used when every AI attempt for control-text
// generation has failed; mirrors the no-network guarantee of
// FallbackResult.
func FallbackControlText(controlText, doc string) string {
	excerpt := strings.TrimSpace(Truncate(doc, 400))
	if excerpt == "" {
		excerpt = "No existing policy content was provided."
	}

	var b strings.Builder
	b.WriteString("Purpose\n")
	fmt.Fprintf(&b, "This policy establishes the organization's commitment to the following requirement: %s\n\n", controlText)
	b.WriteString("Scope\n")
	b.WriteString("This policy applies to all personnel, systems, and information assets owned or operated by the organization.\n\n")
	b.WriteString("Standard\n")
	fmt.Fprintf(&b, "The organization shall implement and maintain measures that satisfy the requirement above. Existing documentation to align with:\n%s\n\n", excerpt)
	b.WriteString("Procedures\n")
	b.WriteString("1. Assign an owner responsible for implementing this requirement.\n")
	b.WriteString("2. Document the specific processes and technical measures used to meet it.\n")
	b.WriteString("3. Review implementation evidence at least annually and after significant change.\n")
	b.WriteString("\nNote: automatic drafting was unavailable. This template was generated locally and should be edited to fit the organization.")
	return b.String()
}
