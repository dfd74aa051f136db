package domain

import (
	"errors"
	"fmt"
)

// ErrNoDecisionTable is returned when a decision evaluation is requested but
// no decision table is loaded. Callers must surface this instead of
// substituting default business logic.
var ErrNoDecisionTable = errors.New("no decision table is loaded")

// ErrNoRuleMatched is returned when a decision table was evaluated but no rule
// matched. This is a deliberate failure, not an empty result: a design-time
// simulator must expose gaps in decision-table coverage rather than mask them.
var ErrNoRuleMatched = errors.New("decision table returned no result")

// ErrDefinitionNotFound is returned when a definition store has no entry for
// the requested filename or kind.
var ErrDefinitionNotFound = errors.New("definition not found")

// ErrScenarioNotFound is returned when no catalogued scenario matches the
// requested slug.
var ErrScenarioNotFound = errors.New("scenario not found")

// StructuralError reports a malformed graph encountered mid-traversal: a
// dead-end non-end node, a missing start node, an edge to an unknown node, or
// a traversal exceeding the hop limit (a cycle that never reaches an end).
type StructuralError struct {
	NodeID string
	Reason string
}

func (e *StructuralError) Error() string {
	if e.NodeID == "" {
		return fmt.Sprintf("malformed process graph: %s", e.Reason)
	}
	return fmt.Sprintf("malformed process graph at node %q: %s", e.NodeID, e.Reason)
}
