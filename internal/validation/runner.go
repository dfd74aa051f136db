package validation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frhnkemal/camunda-automation-testing/internal/logging"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// Verdict strings for the overall validation report.
const (
	MessageValid   = "BPMN is valid"
	MessageInvalid = "BPMN is invalid"
)

// Executor runs a single simulation against the currently loaded definitions.
type Executor interface {
	Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error)
}

// Runner drives the whole scenario catalogue against an executor and renders
// a verdict on the loaded process definitions.
type Runner struct {
	exec   Executor
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets a custom structured logger for the runner.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner over the given executor.
func NewRunner(exec Executor, opts ...RunnerOption) *Runner {
	r := &Runner{
		exec:   exec,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll executes every scenario and every rejection case and aggregates the
// outcomes. An execution error does not abort the sweep; it fails that one
// scenario and the sweep continues. The report passes only when every entry
// passed.
func (r *Runner) RunAll(ctx context.Context) *domain.ValidationReport {
	results := make([]domain.ScenarioResult, 0, len(executionScenarios)+len(rejectionCases))

	for _, scenario := range executionScenarios {
		results = append(results, r.runScenario(ctx, scenario))
	}
	for _, rc := range rejectionCases {
		results = append(results, runRejectionCase(rc))
	}

	allPassed := true
	for _, res := range results {
		if !res.Passed {
			allPassed = false
			break
		}
	}

	message := MessageValid
	if !allPassed {
		message = MessageInvalid
	}
	r.logger.Info("validation sweep finished", "scenarios", len(results), "passed", allPassed)

	return &domain.ValidationReport{
		AllPassed:       allPassed,
		Message:         message,
		ScenarioResults: results,
	}
}

// RunOne executes a single scenario and reports its outcome.
func (r *Runner) RunOne(ctx context.Context, scenario domain.Scenario) domain.ScenarioResult {
	return r.runScenario(ctx, scenario)
}

func (r *Runner) runScenario(ctx context.Context, scenario domain.Scenario) domain.ScenarioResult {
	res := domain.ScenarioResult{
		ScenarioName: scenario.Name,
		Description:  scenario.Description,
		Expected:     scenario.ExpectedStatus,
		ExpectedPath: strings.Join(scenario.ExpectedPath, " → "),
	}

	sim, err := r.exec.Simulate(ctx, scenario.Inputs)
	if err != nil {
		r.logger.Warn("scenario execution failed", "scenario", scenario.Name, "err", err)
		res.Actual = "Error: " + err.Error()
		res.PathPassed = false
		return res
	}

	res.Actual = sim.FinalStatus
	res.ActualPath = strings.Join(sim.ExecutionPath, " → ")
	res.PathPassed = pathMatches(sim.ExecutionPath, scenario.ExpectedPath)
	res.Passed = sim.FinalStatus == scenario.ExpectedStatus && res.PathPassed
	return res
}

// runRejectionCase verifies the validator refuses the payload with a message
// mentioning the expected substring. Any of the returned errors may carry it.
func runRejectionCase(rc domain.RejectionCase) domain.ScenarioResult {
	res := domain.ScenarioResult{
		ScenarioName: rc.Name,
		Description:  rc.Description,
		Expected:     "Rejected",
		PathPassed:   true,
	}

	errs := Validate([]byte(rc.Payload))
	if len(errs) == 0 {
		res.Actual = "Accepted (expected rejection)"
		return res
	}

	want := strings.ToLower(rc.ExpectedErrorSubstring)
	for _, msg := range errs {
		if strings.Contains(strings.ToLower(msg), want) {
			res.Passed = true
			break
		}
	}
	res.Actual = "Rejected: " + errs[0]
	return res
}
