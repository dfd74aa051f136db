// Package inputs derives the input form descriptors a process expects.
//
// A process graph does not declare its inputs, so the analyzer infers them
// from the variable-like tokens found in node labels and edge guards, with
// naming heuristics for type and label. When nothing can be inferred it
// answers the quote-validation defaults.
package inputs

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

var tokenPattern = regexp.MustCompile(`(?i)\bbi_\w+|\$\{([^}]+)\}|\b[a-z_][a-zA-Z0-9_]*\b`)

// internal variables that must never surface as form inputs.
var excludedFragments = []string{"status", "result", "validity"}

// fragments that mark a token as a plausible business input.
var inputFragments = []string{"input", "cost", "margin", "price", "manual", "deal"}

// DefaultFields returns the input descriptors of the built-in
// quote-validation process.
func DefaultFields() []domain.InputField {
	return []domain.InputField{
		{Name: "manualPriceCost", Type: "boolean", Label: "Manual Price Cost", DefaultValue: false, Required: true},
		{Name: "dealMarginPercent", Type: "number", Label: "Deal Margin Percent", DefaultValue: 25.0, Required: true},
	}
}

// ExtractFields analyzes a graph and returns its inferred input fields,
// sorted by name. A nil or token-free graph yields the defaults.
func ExtractFields(graph *domain.ProcessGraph) []domain.InputField {
	if graph == nil {
		return DefaultFields()
	}

	names := make(map[string]bool)
	collect := func(text string) {
		for _, token := range extractTokens(text) {
			if isLikelyInput(token) {
				names[token] = true
			}
		}
	}

	collect(graph.Name)
	for _, node := range graph.Nodes {
		collect(node.Name)
		for _, edge := range node.Outgoing {
			collect(edge.Guard)
		}
	}

	if len(names) == 0 {
		return DefaultFields()
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	fields := make([]domain.InputField, 0, len(sorted))
	for _, name := range sorted {
		fields = append(fields, fieldFromVariable(name))
	}
	return fields
}

// extractTokens pulls variable-like tokens out of free text: bi_-prefixed
// names, ${...} references, and bare identifiers.
func extractTokens(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		token := match[0]
		if match[1] != "" {
			token = match[1]
		}
		tokens = append(tokens, strings.TrimSpace(token))
	}
	return tokens
}

func isLikelyInput(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "cim_") || lower == "quotevalidity" {
		return false
	}
	for _, fragment := range excludedFragments {
		if strings.Contains(lower, fragment) {
			return false
		}
	}
	if strings.HasPrefix(lower, domain.VarInputPrefix) {
		return true
	}
	for _, fragment := range inputFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

func fieldFromVariable(name string) domain.InputField {
	fieldType := inferType(name)
	return domain.InputField{
		Name:         name,
		Type:         fieldType,
		Label:        formatLabel(name),
		DefaultValue: defaultValueFor(fieldType),
		Required:     true,
	}
}

// formatLabel renders "bi_manualPriceCost" as "Manual Price Cost".
func formatLabel(name string) string {
	name = strings.TrimPrefix(name, domain.VarInputPrefix)
	name = strings.ReplaceAll(name, "_", " ")

	var b strings.Builder
	prev := ' '
	for _, r := range name {
		if unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteRune(' ')
		}
		if b.Len() == 0 || prev == ' ' || (unicode.IsUpper(r) && unicode.IsLower(prev)) {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		prev = r
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func inferType(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "cost") && strings.Contains(lower, "manual"),
		strings.Contains(lower, "flag"),
		strings.HasPrefix(lower, "is"),
		strings.HasPrefix(lower, "has"),
		strings.Contains(lower, "manual"):
		return "boolean"
	case strings.Contains(lower, "cost"),
		strings.Contains(lower, "price"),
		strings.Contains(lower, "margin"),
		strings.Contains(lower, "percent"):
		return "number"
	default:
		return "string"
	}
}

func defaultValueFor(fieldType string) any {
	switch fieldType {
	case "number":
		return 0.0
	case "boolean":
		return false
	default:
		return ""
	}
}
