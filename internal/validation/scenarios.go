package validation

import "github.com/frhnkemal/camunda-automation-testing/pkg/domain"

// The two canonical expected paths. Steps name key stops only; the matcher
// tolerates intermediate nodes and label variations.
var (
	expectedPathInvalid = []string{"Start", "Prepare", "Look-up", "Gateway", "Invalid", "End"}
	expectedPathValid   = []string{"Start", "Prepare", "Look-up", "Gateway", "Valid", "End"}
)

// executionScenarios is the fixed catalogue of quote-validation runs: the
// manual-pricing override, both sides of the 25% margin threshold, and the
// boundary itself.
var executionScenarios = []domain.Scenario{
	{
		Name:           "Manual Pricing - Invalid",
		Description:    "Manual pricing always results in Invalid status",
		Inputs:         domain.SimulationInput{ManualPriceCost: true, DealMarginPercent: 30.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Manual with Zero Margin",
		Description:    "Manual pricing with 0% margin - still Invalid",
		Inputs:         domain.SimulationInput{ManualPriceCost: true, DealMarginPercent: 0.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Manual with High Margin",
		Description:    "Manual pricing with 99% margin - still Invalid (manual overrides margin)",
		Inputs:         domain.SimulationInput{ManualPriceCost: true, DealMarginPercent: 99.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Low Margin - Invalid",
		Description:    "Margin below 25% results in Invalid status",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 24.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Zero Margin",
		Description:    "0% margin without manual pricing - Invalid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 0.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "One Percent Margin",
		Description:    "1% margin - Invalid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 1.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "23% Margin",
		Description:    "23% margin - below threshold, Invalid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 23.0},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Just Below 25% - 24.99",
		Description:    "Edge: 24.99% margin (< 25) - Invalid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 24.99},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Just Below 25% - 24.9",
		Description:    "Edge: 24.9% margin - Invalid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 24.9},
		ExpectedStatus: domain.StatusInvalid,
		ExpectedPath:   expectedPathInvalid,
	},
	{
		Name:           "Valid - Exactly 25%",
		Description:    "Boundary: exactly 25% margin - Valid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 25.0},
		ExpectedStatus: domain.StatusValid,
		ExpectedPath:   expectedPathValid,
	},
	{
		Name:           "Just Above 25% - 25.01",
		Description:    "Edge: 25.01% margin (>= 25) - Valid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 25.01},
		ExpectedStatus: domain.StatusValid,
		ExpectedPath:   expectedPathValid,
	},
	{
		Name:           "Just Above 25% - 25.1",
		Description:    "Edge: 25.1% margin - Valid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 25.1},
		ExpectedStatus: domain.StatusValid,
		ExpectedPath:   expectedPathValid,
	},
	{
		Name:           "26% Margin",
		Description:    "26% margin - Valid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 26.0},
		ExpectedStatus: domain.StatusValid,
		ExpectedPath:   expectedPathValid,
	},
	{
		Name:           "High Margin - 30%",
		Description:    "30% margin with no manual pricing - Valid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 30.0},
		ExpectedStatus: domain.StatusValid,
		ExpectedPath:   expectedPathValid,
	},
	{
		Name:           "Very High Margin - 100%",
		Description:    "Edge: 100% margin - Valid",
		Inputs:         domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 100.0},
		ExpectedStatus: domain.StatusValid,
		ExpectedPath:   expectedPathValid,
	},
}

// rejectionCases are malformed simulate payloads the validator must refuse.
var rejectionCases = []domain.RejectionCase{
	{
		Name:                   "Reject dealMarginPercent as string",
		Description:            "dealMarginPercent must be a number, not text",
		Payload:                `{"manualPriceCost": false, "dealMarginPercent": "abc"}`,
		ExpectedErrorSubstring: "number",
	},
	{
		Name:                   "Reject dealMarginPercent as boolean",
		Description:            "dealMarginPercent must be a number",
		Payload:                `{"manualPriceCost": false, "dealMarginPercent": true}`,
		ExpectedErrorSubstring: "number",
	},
	{
		Name:                   "Reject manualPriceCost as string",
		Description:            "manualPriceCost must be a boolean",
		Payload:                `{"manualPriceCost": "yes", "dealMarginPercent": 25}`,
		ExpectedErrorSubstring: "boolean",
	},
	{
		Name:                   "Reject manualPriceCost as number",
		Description:            "manualPriceCost must be a boolean",
		Payload:                `{"manualPriceCost": 1, "dealMarginPercent": 25}`,
		ExpectedErrorSubstring: "boolean",
	},
	{
		Name:                   "Reject missing manualPriceCost",
		Description:            "manualPriceCost is required",
		Payload:                `{"dealMarginPercent": 25}`,
		ExpectedErrorSubstring: "manualPriceCost",
	},
	{
		Name:                   "Reject missing dealMarginPercent",
		Description:            "dealMarginPercent is required",
		Payload:                `{"manualPriceCost": false}`,
		ExpectedErrorSubstring: "dealMarginPercent",
	},
}

// Scenarios returns a copy of the execution scenario catalogue.
func Scenarios() []domain.Scenario {
	out := make([]domain.Scenario, len(executionScenarios))
	copy(out, executionScenarios)
	return out
}

// RejectionCases returns a copy of the malformed-payload catalogue.
func RejectionCases() []domain.RejectionCase {
	out := make([]domain.RejectionCase, len(rejectionCases))
	copy(out, rejectionCases)
	return out
}

// ScenarioBySlug resolves an execution scenario by its URL slug.
func ScenarioBySlug(slug string) (domain.Scenario, bool) {
	for _, s := range executionScenarios {
		if s.Slug() == slug {
			return s, true
		}
	}
	return domain.Scenario{}, false
}
