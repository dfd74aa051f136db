package domain

// Well-known process variable names. Externally supplied inputs arrive under
// the "bi_" prefix; the decision output and final status live under fixed keys.
const (
	VarInputPrefix   = "bi_"
	VarQuoteValidity = "quoteValidity"
	VarStatus        = "cim_Status"
)

// Status literals produced by the quote-validity process.
const (
	StatusValid   = "Valid"
	StatusInvalid = "Invalid"
	// StatusCompleted is the generic terminal status when an end node is
	// reached without an explicit status assignment.
	StatusCompleted = "Completed"
)

// SimulationInput carries the caller-supplied input variables of one run.
type SimulationInput struct {
	ManualPriceCost   bool    `json:"manualPriceCost" mapstructure:"manualPriceCost"`
	DealMarginPercent float64 `json:"dealMarginPercent" mapstructure:"dealMarginPercent"`
}

// DecisionResult is the output of one decision-table evaluation.
type DecisionResult struct {
	QuoteValidity string `json:"quoteValidity"`
}

// SimulationResult is the terminal artifact of one interpreter run. It is
// immutable once constructed: created once per run, never reused across runs.
type SimulationResult struct {
	Inputs SimulationInput `json:"inputs"`

	// DMNResult is the decision evaluation output, if any was obtained.
	DMNResult *DecisionResult `json:"dmnResult"`

	// ExecutionPath lists the display names of the visited nodes in traversal
	// order, start node first, terminal node last.
	ExecutionPath []string `json:"executionPath"`

	FinalStatus string `json:"finalStatus"`

	// ProcessVariables is the final variable snapshot of the run.
	ProcessVariables map[string]any `json:"processVariables"`
}

// InputField describes one input a caller must supply to start a simulation.
type InputField struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Label        string `json:"label"`
	DefaultValue any    `json:"defaultValue"`
	Required     bool   `json:"required"`
}
