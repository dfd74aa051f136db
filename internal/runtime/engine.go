// Package runtime implements the process-graph interpreter.
//
// An execution walks the graph from its start node, dispatching on node kind:
// tasks mutate the variable environment through name conventions, decision
// tasks delegate to the table evaluator, gateways route on edge guards, and
// end nodes capture the final status. Every run owns a fresh environment and
// execution path; the graph and table are shared immutably, so concurrent
// executions against the same models are safe.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frhnkemal/camunda-automation-testing/internal/logging"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// DecisionEvaluator is the narrow dependency the interpreter needs from the
// decision layer.
type DecisionEvaluator interface {
	Evaluate(table *domain.DecisionTable, inputs map[string]any) (*domain.DecisionResult, error)
}

// defaultMaxHops bounds a single traversal. The model makes no acyclicity
// guarantee, so a cyclic graph that never reaches an end node must be cut off
// rather than looping forever.
const defaultMaxHops = 1000

// Interpreter executes process graphs. Stateless between calls.
type Interpreter struct {
	evaluator DecisionEvaluator
	logger    *slog.Logger
	maxHops   int
}

// Option defines a functional option for configuring the Interpreter.
type Option func(*Interpreter)

// WithLogger sets a custom structured logger for the interpreter.
func WithLogger(logger *slog.Logger) Option {
	return func(it *Interpreter) {
		it.logger = logger
	}
}

// WithMaxHops overrides the traversal hop limit.
func WithMaxHops(n int) Option {
	return func(it *Interpreter) {
		if n > 0 {
			it.maxHops = n
		}
	}
}

// NewInterpreter creates a new Interpreter backed by the given evaluator.
func NewInterpreter(evaluator DecisionEvaluator, opts ...Option) *Interpreter {
	it := &Interpreter{
		evaluator: evaluator,
		logger:    logging.NewNop(),
		maxHops:   defaultMaxHops,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Execute walks the graph with the given inputs and returns the terminal
// artifact of the run. Evaluator failures (no table loaded, no rule matched)
// and structural defects (dead ends, hop-limit cycles) are fatal for the whole
// execution; the interpreter never substitutes default business logic.
func (it *Interpreter) Execute(ctx context.Context, graph *domain.ProcessGraph, table *domain.DecisionTable, in domain.SimulationInput) (*domain.SimulationResult, error) {
	if graph == nil {
		return nil, &domain.StructuralError{Reason: "no process graph"}
	}

	current, ok := graph.StartNode()
	if !ok {
		return nil, &domain.StructuralError{Reason: "no start node"}
	}

	env := map[string]any{
		domain.VarInputPrefix + "manualPriceCost":   in.ManualPriceCost,
		domain.VarInputPrefix + "dealMarginPercent": in.DealMarginPercent,
	}
	var path []string
	var dmnResult *domain.DecisionResult
	finalStatus := ""

	for hops := 0; ; hops++ {
		if hops >= it.maxHops {
			return nil, &domain.StructuralError{
				NodeID: current.ID,
				Reason: fmt.Sprintf("no end node reached within %d hops", it.maxHops),
			}
		}

		path = append(path, current.DisplayName())

		switch current.Kind {
		case domain.KindTask:
			applyTaskBinding(current, env, it.logger)

		case domain.KindDecisionTask:
			result, err := it.evaluator.Evaluate(table, decisionVariables(env))
			if err != nil {
				return nil, fmt.Errorf("decision task %q: %w", current.DisplayName(), err)
			}
			dmnResult = result
			env[domain.VarQuoteValidity] = result.QuoteValidity

		case domain.KindGateway:
			next, err := it.selectGatewayTarget(graph, current, env)
			if err != nil {
				return nil, err
			}
			current = next
			continue

		case domain.KindEnd:
			if s, ok := env[domain.VarStatus].(string); ok && s != "" {
				finalStatus = s
			} else {
				finalStatus = domain.StatusCompleted
			}
		}

		if current.Kind == domain.KindEnd {
			break
		}

		next, err := it.advance(graph, current)
		if err != nil {
			return nil, err
		}
		current = next
	}

	// A graph without a usable decision task still has to produce a
	// decision-backed result: evaluate the table directly from the
	// caller-supplied inputs. If this fails too, the whole execution fails.
	if dmnResult == nil {
		result, err := it.evaluator.Evaluate(table, map[string]any{
			"manualPriceCost":   in.ManualPriceCost,
			"dealMarginPercent": in.DealMarginPercent,
		})
		if err != nil {
			return nil, fmt.Errorf("fallback decision evaluation: %w", err)
		}
		dmnResult = result
		env[domain.VarQuoteValidity] = result.QuoteValidity
	}

	it.logger.Debug("execution completed",
		"graph", graph.ID,
		"status", finalStatus,
		"steps", len(path))

	return &domain.SimulationResult{
		Inputs:           in,
		DMNResult:        dmnResult,
		ExecutionPath:    path,
		FinalStatus:      finalStatus,
		ProcessVariables: env,
	}, nil
}

// advance follows the node's first outgoing edge. A non-end node with no
// outgoing edge is a structural defect, not a silent stop.
func (it *Interpreter) advance(graph *domain.ProcessGraph, node domain.FlowNode) (domain.FlowNode, error) {
	if len(node.Outgoing) == 0 {
		return domain.FlowNode{}, &domain.StructuralError{
			NodeID: node.ID,
			Reason: "dead end: non-end node has no outgoing edge",
		}
	}
	return it.resolveTarget(graph, node.Outgoing[0])
}

// selectGatewayTarget evaluates the gateway's outgoing guards in declaration
// order. The first matching guard wins; otherwise the default edge is taken.
// A gateway with neither is malformed: the first edge is taken as a last
// resort and the condition is flagged.
func (it *Interpreter) selectGatewayTarget(graph *domain.ProcessGraph, node domain.FlowNode, env map[string]any) (domain.FlowNode, error) {
	if len(node.Outgoing) == 0 {
		return domain.FlowNode{}, &domain.StructuralError{
			NodeID: node.ID,
			Reason: "gateway has no outgoing edges",
		}
	}

	var defaultEdge *domain.FlowEdge
	for i := range node.Outgoing {
		edge := node.Outgoing[i]
		if edge.Guard == "" || edge.IsDefault {
			if defaultEdge == nil {
				defaultEdge = &node.Outgoing[i]
			}
			continue
		}
		if evaluateGuard(edge.Guard, env) {
			it.logger.Debug("gateway guard matched", "node", node.ID, "guard", edge.Guard)
			return it.resolveTarget(graph, edge)
		}
	}

	if defaultEdge != nil {
		it.logger.Debug("gateway taking default edge", "node", node.ID)
		return it.resolveTarget(graph, *defaultEdge)
	}

	it.logger.Warn("gateway has no matching guard and no default edge; taking first edge",
		"node", node.ID)
	return it.resolveTarget(graph, node.Outgoing[0])
}

func (it *Interpreter) resolveTarget(graph *domain.ProcessGraph, edge domain.FlowEdge) (domain.FlowNode, error) {
	next, ok := graph.NodeByID(edge.TargetID)
	if !ok {
		return domain.FlowNode{}, &domain.StructuralError{
			NodeID: edge.SourceID,
			Reason: fmt.Sprintf("edge %q targets unknown node %q", edge.ID, edge.TargetID),
		}
	}
	return next, nil
}

// decisionVariables builds the variable set handed to the table evaluator:
// every variable plus the unprefixed form of each "bi_" input, preferring an
// already-present unprefixed value over the mirror.
func decisionVariables(env map[string]any) map[string]any {
	vars := make(map[string]any, len(env))
	for k, v := range env {
		vars[k] = v
	}
	for k, v := range env {
		name, found := cutInputPrefix(k)
		if !found {
			continue
		}
		if _, present := env[name]; !present {
			vars[name] = v
		}
	}
	return vars
}
