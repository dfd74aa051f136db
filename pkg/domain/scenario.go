package domain

import "strings"

// Scenario is a named, immutable execution fixture: input values, the expected
// final status, and the ordered key steps the execution path must contain.
// Key steps are matched by substring, not exact equality, so a renamed node
// ("Terminate" instead of "End") still satisfies the expectation.
type Scenario struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Inputs         SimulationInput `json:"inputs"`
	ExpectedStatus string          `json:"expectedResult"`
	ExpectedPath   []string        `json:"expectedExecutionPath"`
}

// Slug derives the URL identifier of the scenario: lowercased, with every run
// of non-alphanumeric characters collapsed to a single dash.
func (s Scenario) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s.Name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// RejectionCase is a malformed-payload fixture: the raw body the input
// validator must reject and the substring the error message must contain.
type RejectionCase struct {
	Name                   string `json:"name"`
	Description            string `json:"description"`
	Payload                string `json:"invalidJson"`
	ExpectedErrorSubstring string `json:"expectedErrorSubstring"`
}

// ScenarioResult is the outcome of replaying one scenario.
type ScenarioResult struct {
	ScenarioName string `json:"scenarioName"`
	Description  string `json:"description"`
	Expected     string `json:"expected"`
	Actual       string `json:"actual"`
	Passed       bool   `json:"passed"`
	PathPassed   bool   `json:"pathPassed"`
	ExpectedPath string `json:"expectedPath,omitempty"`
	ActualPath   string `json:"actualPath,omitempty"`
}

// ValidationReport aggregates every scenario result into a single verdict.
type ValidationReport struct {
	AllPassed       bool             `json:"allPassed"`
	Message         string           `json:"validationMessage"`
	ScenarioResults []ScenarioResult `json:"scenarioResults"`
}
