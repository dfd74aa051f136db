package ports

import (
	"context"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// ProcessSource publishes the process graph a traversal should run against.
// Implementations must publish a new, fully-formed, immutable graph rather
// than mutating one in place: replacement is a reference swap from the
// interpreter's point of view.
type ProcessSource interface {
	// CurrentGraph returns the currently published graph.
	CurrentGraph(ctx context.Context) (*domain.ProcessGraph, error)
}

// DecisionSource publishes the current decision table. The interpreter calls
// it once per execution and must not assume the table is stable across calls;
// the storage layer decides its own caching/reload policy.
type DecisionSource interface {
	// CurrentTable returns the currently published table.
	// Returns domain.ErrNoDecisionTable when none is loaded.
	CurrentTable(ctx context.Context) (*domain.DecisionTable, error)
}
