// Package catalog defines the static label catalog for the tracker.
//
// The catalog is an immutable value built once at startup from the built-in
// defaults, optionally merged with [labels.NAME] config sections, and passed
// explicitly to the submission step.
package catalog

import "sort"

// Label is one catalog entry: identifier, display color and description.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"` // 6-digit hex, no leading #
	Description string `json:"description"`
}

// Catalog is an ordered, read-only set of label definitions.
type Catalog struct {
	labels []Label
}

// New creates a catalog from the given labels, preserving order.
func New(labels []Label) Catalog {
	c := Catalog{labels: make([]Label, len(labels))}
	copy(c.labels, labels)
	return c
}

// Default returns the built-in label catalog: priorities, business areas
// and work categories.
func Default() Catalog {
	return New(defaultLabels)
}

// Labels returns a copy of the catalog entries in order.
func (c Catalog) Labels() []Label {
	out := make([]Label, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of catalog entries.
func (c Catalog) Len() int {
	return len(c.labels)
}

// Names returns the label identifiers in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.labels))
	for i, l := range c.labels {
		names[i] = l.Name
	}
	return names
}

// Merge returns a new catalog with the overrides applied: entries with a
// known name replace the existing definition in place, unknown names are
// appended in sorted order for determinism.
func (c Catalog) Merge(overrides map[string]Label) Catalog {
	if len(overrides) == 0 {
		return New(c.labels)
	}

	merged := make([]Label, len(c.labels))
	copy(merged, c.labels)

	seen := make(map[string]int, len(merged))
	for i, l := range merged {
		seen[l.Name] = i
	}

	var added []string
	for name := range overrides {
		if _, ok := seen[name]; !ok {
			added = append(added, name)
		}
	}
	sort.Strings(added)

	for name, def := range overrides {
		if i, ok := seen[name]; ok {
			if def.Color != "" {
				merged[i].Color = def.Color
			}
			if def.Description != "" {
				merged[i].Description = def.Description
			}
		}
	}
	for _, name := range added {
		def := overrides[name]
		merged = append(merged, Label{Name: name, Color: def.Color, Description: def.Description})
	}

	return Catalog{labels: merged}
}

var defaultLabels = []Label{
	// Priorities
	{"priority:high", "d73a4a", "Critical for MVP"},
	{"priority:medium", "fbca04", "Important but not blocking"},
	{"priority:low", "0e8a16", "Nice-to-have"},

	// Business areas
	{"pain", "1d76db", "PAIN business area"},
	{"pacs", "1d76db", "PACS business area"},
	{"camt", "1d76db", "CAMT business area"},
	{"acmt", "1d76db", "ACMT business area"},
	{"admi", "1d76db", "ADMI business area"},
	{"remt", "1d76db", "REMT business area"},
	{"head", "1d76db", "Business application header"},

	// Categories
	{"setup", "0075ca", "Project setup"},
	{"core", "0075ca", "Core infrastructure"},
	{"domain", "0075ca", "Domain models"},
	{"parsing", "0075ca", "Parsing functionality"},
	{"generation", "0075ca", "XML generation"},
	{"validation", "0075ca", "Validation"},
	{"pipeline", "0075ca", "Channel pipeline"},
	{"streaming", "0075ca", "Streaming"},
	{"transformation", "0075ca", "Version transformation"},
	{"testing", "0075ca", "Tests"},
	{"performance", "0075ca", "Performance and benchmarks"},
	{"documentation", "0075ca", "Documentation"},
	{"samples", "0075ca", "Sample projects"},
	{"di", "0075ca", "Dependency injection"},
	{"configuration", "0075ca", "Configuration"},
	{"observability", "0075ca", "Logging, metrics, tracing"},
	{"error-handling", "0075ca", "Error handling"},
	{"tooling", "0075ca", "Developer tooling"},
	{"codegen", "0075ca", "Code generation"},
	{"ci-cd", "0075ca", "Build pipeline"},
	{"code-quality", "0075ca", "Code analysis"},
	{"infrastructure", "0075ca", "Infrastructure"},
	{"dependencies", "0075ca", "Dependencies"},
	{"interfaces", "0075ca", "Interfaces"},
	{"models", "0075ca", "Models"},
	{"enums", "0075ca", "Enums"},
	{"factory", "0075ca", "Factory pattern"},
	{"builder", "0075ca", "Builder pattern"},
	{"orchestration", "0075ca", "Orchestration"},
	{"business-rules", "0075ca", "Business rules"},
	{"mapping", "0075ca", "Mapping"},
	{"mt", "0075ca", "SWIFT MT messages"},
	{"test-data", "0075ca", "Test data"},
	{"integration", "0075ca", "Integration tests"},
	{"benchmarks", "0075ca", "Benchmarks"},
	{"memory", "0075ca", "Memory profiling"},
	{"logging", "0075ca", "Logging"},
	{"metrics", "0075ca", "Metrics"},
	{"tracing", "0075ca", "Tracing"},
	{"health", "0075ca", "Health checks"},
	{"api-docs", "0075ca", "API documentation"},
	{"architecture", "0075ca", "Architecture"},
	{"schemas", "0075ca", "XSD schemas"},
	{"output", "0075ca", "Output and writing"},
	{".net8", "512bd4", ".NET 8 features"},
}
