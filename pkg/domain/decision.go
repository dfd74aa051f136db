package domain

// Hit policies recognized on a decision table. Evaluation is first-match-wins
// either way: a UNIQUE table's single matching rule is by definition the first.
const (
	HitPolicyFirst  = "FIRST"
	HitPolicyUnique = "UNIQUE"
)

// Rule is one row of a decision table. Conditions align positionally with the
// table's input columns; a rule matches when every condition is satisfied by
// the correspondingly named input variable.
type Rule struct {
	ID string `json:"id,omitempty"`

	// Conditions holds the raw unary-test expressions, one per input column.
	// An empty condition matches any value.
	Conditions []string `json:"conditions"`

	// Output is the value produced when the rule matches.
	Output string `json:"output"`
}

// DecisionTable is an immutable in-memory rule table. A table with zero rules
// is valid and simply never matches.
type DecisionTable struct {
	// Key identifies the decision (the DMN decision id, falling back to name).
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`

	HitPolicy string `json:"hitPolicy,omitempty"`

	// Inputs names the input columns, positionally aligned with every rule's
	// conditions.
	Inputs []string `json:"inputs"`

	// Output names the output column (e.g. "quoteValidity").
	Output string `json:"output"`

	Rules []Rule `json:"rules"`
}
