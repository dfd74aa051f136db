// Package decision evaluates decision tables against input variables.
//
// Rules are checked in table order with a first-match-wins hit policy. Every
// condition is a narrow unary test (literal equality or a numeric comparison);
// unsupported condition text fails closed and never matches.
package decision

import (
	"log/slog"
	"strings"

	"github.com/frhnkemal/camunda-automation-testing/internal/logging"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// Evaluator selects the first matching rule of a decision table.
type Evaluator struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the Evaluator.
type Option func(*Evaluator)

// WithLogger sets a custom structured logger for the evaluator.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

// New creates a new Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs the table against the inputs and returns the first matching
// rule's output. It never mutates the supplied inputs.
//
// Returns domain.ErrNoDecisionTable when table is nil and
// domain.ErrNoRuleMatched when the table was evaluated but no rule matched.
func (e *Evaluator) Evaluate(table *domain.DecisionTable, inputs map[string]any) (*domain.DecisionResult, error) {
	if table == nil {
		return nil, domain.ErrNoDecisionTable
	}

	for _, rule := range table.Rules {
		if e.ruleMatches(table, rule, inputs) {
			output := trimQuotes(strings.TrimSpace(rule.Output))
			e.logger.Debug("decision rule matched",
				"decision", table.Key,
				"rule", rule.ID,
				"output", output)
			return &domain.DecisionResult{QuoteValidity: output}, nil
		}
	}

	e.logger.Debug("no decision rule matched", "decision", table.Key, "inputs", inputs)
	return nil, domain.ErrNoRuleMatched
}

func (e *Evaluator) ruleMatches(table *domain.DecisionTable, rule domain.Rule, inputs map[string]any) bool {
	if len(rule.Conditions) > len(table.Inputs) {
		// A condition without an input column can never be satisfied.
		return false
	}
	for i, cond := range rule.Conditions {
		value := inputs[table.Inputs[i]]
		if !matchesCondition(cond, value) {
			return false
		}
	}
	return true
}

func trimQuotes(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
