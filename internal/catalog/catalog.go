// Package catalog holds the static compliance framework data: every
// supported framework, its categories, and the controls inside each
// category. Loaded once as package data, never mutated.
package catalog

// Control is a single requirement inside a category.
type Control struct {
	ID             string
	Text           string
	Recommendation string
}

// Category groups controls under a framework function, family or domain.
type Category struct {
	Name        string
	Description string
	Controls    []Control
}

// Framework is one supported compliance framework.
type Framework struct {
	ID         string
	Name       string
	Categories []Category
}

// Get looks up a framework by identifier.
func Get(id string) (*Framework, bool) {
	fw, ok := frameworks[id]
	return fw, ok
}

// IDs returns the supported framework identifiers in a stable order.
func IDs() []string {
	return []string{"NIST_CSF", "NIST_800_53", "PCI_DSS", "ISO_27001", "SOC_2"}
}

// CategoryNames returns the ordered category names of a framework.
func (f *Framework) CategoryNames() []string {
	names := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		names = append(names, c.Name)
	}
	return names
}

// ControlCount returns the total number of controls across all categories.
func (f *Framework) ControlCount() int {
	n := 0
	for _, c := range f.Categories {
		n += len(c.Controls)
	}
	return n
}

var frameworks = map[string]*Framework{
	"NIST_CSF":    nistCSF,
	"NIST_800_53": nist80053,
	"PCI_DSS":     pciDSS,
	"ISO_27001":   iso27001,
	"SOC_2":       soc2,
}
