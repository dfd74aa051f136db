package simulator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frhnkemal/camunda-automation-testing/internal/adapters/memory"
	"github.com/frhnkemal/camunda-automation-testing/internal/bpmn"
	"github.com/frhnkemal/camunda-automation-testing/internal/decision"
	"github.com/frhnkemal/camunda-automation-testing/internal/dmn"
	"github.com/frhnkemal/camunda-automation-testing/internal/inputs"
	"github.com/frhnkemal/camunda-automation-testing/internal/logging"
	"github.com/frhnkemal/camunda-automation-testing/internal/runtime"
	"github.com/frhnkemal/camunda-automation-testing/internal/validation"
	"github.com/frhnkemal/camunda-automation-testing/internal/validator"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
	"github.com/frhnkemal/camunda-automation-testing/pkg/ports"
)

// Default filenames used when an upload does not carry one.
const (
	DefaultBPMNFilename = "process.bpmn"
	DefaultDMNFilename  = "decision.dmn"
)

// Engine is the high-level entry point of the simulator library. It wraps the
// interpreter and the validation harness behind the definition store: every
// execution re-reads the latest uploaded definitions, so an upload is visible
// to the next call without restarts.
type Engine struct {
	store       ports.DefinitionStore
	interpreter *runtime.Interpreter
	runner      *validation.Runner
	logger      *slog.Logger
	maxHops     int
	useDefaults bool

	builtinGraph *domain.ProcessGraph
	builtinTable *domain.DecisionTable
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a custom DefinitionStore, bypassing the default in-memory
// backend.
func WithStore(store ports.DefinitionStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxHops overrides the interpreter's traversal hop limit.
func WithMaxHops(n int) Option {
	return func(e *Engine) {
		e.maxHops = n
	}
}

// WithoutDefaultDefinitions disables the built-in process and decision table.
// With no defaults and no uploads, executions fail instead of falling back.
func WithoutDefaultDefinitions() Option {
	return func(e *Engine) {
		e.useDefaults = false
	}
}

// New initializes a simulator Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		useDefaults: true,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.store == nil {
		e.store = memory.NewStore()
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.useDefaults {
		e.builtinGraph = defaultGraph()
		e.builtinTable = defaultTable()
	}

	evaluator := decision.New(decision.WithLogger(e.logger))
	runtimeOpts := []runtime.Option{runtime.WithLogger(e.logger)}
	if e.maxHops > 0 {
		runtimeOpts = append(runtimeOpts, runtime.WithMaxHops(e.maxHops))
	}
	e.interpreter = runtime.NewInterpreter(evaluator, runtimeOpts...)
	e.runner = validation.NewRunner(e, validation.WithLogger(e.logger))

	return e
}

// Store returns the underlying definition store.
func (e *Engine) Store() ports.DefinitionStore {
	return e.store
}

// CurrentGraph returns the graph of the most recently uploaded BPMN document,
// or the built-in default when nothing was uploaded.
func (e *Engine) CurrentGraph(ctx context.Context) (*domain.ProcessGraph, error) {
	name, content, err := e.store.Latest(ctx, ports.DefinitionBPMN)
	if errors.Is(err, domain.ErrDefinitionNotFound) {
		return e.builtinGraph, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load process definition: %w", err)
	}

	graph, err := bpmn.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("process definition %q: %w", name, err)
	}
	return graph, nil
}

// CurrentTable returns the table of the most recently uploaded DMN document,
// or the built-in default. Returns domain.ErrNoDecisionTable when neither
// exists.
func (e *Engine) CurrentTable(ctx context.Context) (*domain.DecisionTable, error) {
	name, content, err := e.store.Latest(ctx, ports.DefinitionDMN)
	if errors.Is(err, domain.ErrDefinitionNotFound) {
		if e.builtinTable == nil {
			return nil, domain.ErrNoDecisionTable
		}
		return e.builtinTable, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load decision definition: %w", err)
	}

	table, err := dmn.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("decision definition %q: %w", name, err)
	}
	return table, nil
}

// Simulate executes the current process with the given inputs. Each call
// re-reads the definitions, owns a fresh variable environment, and returns an
// independent result.
func (e *Engine) Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error) {
	graph, err := e.CurrentGraph(ctx)
	if err != nil {
		return nil, err
	}

	table, err := e.CurrentTable(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoDecisionTable) {
		return nil, err
	}

	return e.interpreter.Execute(ctx, graph, table, in)
}

// Scenarios returns the execution scenario catalogue.
func (e *Engine) Scenarios() []domain.Scenario {
	return validation.Scenarios()
}

// RejectionCases returns the malformed-payload catalogue.
func (e *Engine) RejectionCases() []domain.RejectionCase {
	return validation.RejectionCases()
}

// RunScenario replays a single catalogued scenario addressed by slug.
// Returns domain.ErrScenarioNotFound for unknown slugs.
func (e *Engine) RunScenario(ctx context.Context, slug string) (domain.ScenarioResult, error) {
	scenario, ok := validation.ScenarioBySlug(slug)
	if !ok {
		return domain.ScenarioResult{}, domain.ErrScenarioNotFound
	}
	return e.runner.RunOne(ctx, scenario), nil
}

// Validate replays the whole catalogue against the current definitions and
// returns the aggregated verdict.
func (e *Engine) Validate(ctx context.Context) *domain.ValidationReport {
	return e.runner.RunAll(ctx)
}

// UploadBPMN parses, lints, and stores a process definition. Rejected
// documents leave the store untouched.
func (e *Engine) UploadBPMN(ctx context.Context, filename string, content []byte) error {
	if filename == "" {
		filename = DefaultBPMNFilename
	}

	graph, err := bpmn.Parse(content)
	if err != nil {
		return err
	}
	if err := validator.ValidateGraph(graph); err != nil {
		return fmt.Errorf("invalid process definition: %w", err)
	}

	if err := e.store.Put(ctx, ports.DefinitionBPMN, filename, content); err != nil {
		return fmt.Errorf("store process definition: %w", err)
	}
	e.logger.Info("process definition uploaded", "filename", filename, "nodes", len(graph.Nodes))
	return nil
}

// UploadDMN parses and stores a decision definition.
func (e *Engine) UploadDMN(ctx context.Context, filename string, content []byte) error {
	if filename == "" {
		filename = DefaultDMNFilename
	}

	table, err := dmn.Parse(content)
	if err != nil {
		return err
	}

	if err := e.store.Put(ctx, ports.DefinitionDMN, filename, content); err != nil {
		return fmt.Errorf("store decision definition: %w", err)
	}
	e.logger.Info("decision definition uploaded",
		"filename", filename, "decision", table.Key, "rules", len(table.Rules))
	return nil
}

// Files lists the stored definition filenames per kind.
func (e *Engine) Files(ctx context.Context) (map[string][]string, error) {
	out := make(map[string][]string, 2)
	for _, kind := range []ports.DefinitionKind{ports.DefinitionBPMN, ports.DefinitionDMN} {
		names, err := e.store.List(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("list %s definitions: %w", kind, err)
		}
		if names == nil {
			names = []string{}
		}
		out[string(kind)] = names
	}
	return out, nil
}

// InputFields describes the inputs the current process expects.
func (e *Engine) InputFields(ctx context.Context) ([]domain.InputField, error) {
	graph, err := e.CurrentGraph(ctx)
	if err != nil {
		return nil, err
	}
	return inputs.ExtractFields(graph), nil
}
