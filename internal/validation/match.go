package validation

import "strings"

// pathSynonyms widens individual expected steps so the same catalogue matches
// both uploaded diagrams and the built-in defaults, whose node labels differ
// ("Terminate" end events, "4000"/"3000" status codes, gateways labelled by
// their decision).
var pathSynonyms = map[string][]string{
	"end":     {"end", "terminate"},
	"gateway": {"gateway", "result", "decision"},
	"invalid": {"invalid", "4000"},
	"valid":   {"valid", "3000"},
}

// pathMatches reports whether the actual execution path contains every
// expected step, in order, each matched case-insensitively by substring.
// Steps may be separated by any number of unmatched actual entries; an empty
// expectation matches anything.
func pathMatches(actual, expected []string) bool {
	if len(expected) == 0 {
		return true
	}

	cursor := 0
	for _, step := range expected {
		want := strings.ToLower(step)
		found := false
		for cursor < len(actual) {
			got := strings.ToLower(actual[cursor])
			cursor++
			if stepMatches(got, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func stepMatches(actual, expected string) bool {
	if strings.Contains(actual, expected) {
		return true
	}
	for _, alt := range pathSynonyms[expected] {
		if strings.Contains(actual, alt) {
			return true
		}
	}
	return false
}
