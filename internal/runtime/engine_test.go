package runtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frhnkemal/camunda-automation-testing/internal/decision"
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
	"github.com/frhnkemal/camunda-automation-testing/pkg/dsl"
)

func quoteGraph(t *testing.T) *domain.ProcessGraph {
	t.Helper()
	b := dsl.New("quote-validation").Name("Quote Validation")
	b.Add("start").Start("Start").Go("prepare")
	b.Add("prepare").Task("Prepare Values for DMN").Go("lookup")
	b.Add("lookup").Decision("Look-up Results").Go("gateway")
	b.Add("gateway").Gateway("Result / Decision Gateway").
		Branch(`quoteValidity = "Invalid"`, "set-invalid").
		Default("set-valid")
	b.Add("set-invalid").Task("Set Status Invalid").Go("end")
	b.Add("set-valid").Task("Set Status Valid").Go("end")
	b.Add("end").End("End")

	graph, err := b.Build()
	require.NoError(t, err)
	return graph
}

func quoteTable() *domain.DecisionTable {
	return &domain.DecisionTable{
		Key:       "quote-validity",
		HitPolicy: domain.HitPolicyFirst,
		Inputs:    []string{"manualPriceCost", "dealMarginPercent"},
		Output:    "quoteValidity",
		Rules: []domain.Rule{
			{ID: "rule-1", Conditions: []string{"true", ""}, Output: `"Invalid"`},
			{ID: "rule-2", Conditions: []string{"false", "< 25"}, Output: `"Invalid"`},
			{ID: "rule-3", Conditions: []string{"false", ">= 25"}, Output: `"Valid"`},
		},
	}
}

func newTestInterpreter(opts ...Option) *Interpreter {
	return NewInterpreter(decision.New(), opts...)
}

func TestExecute_InvalidBranch(t *testing.T) {
	result, err := newTestInterpreter().Execute(context.Background(), quoteGraph(t), quoteTable(),
		domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 20})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusInvalid, result.FinalStatus)
	require.NotNil(t, result.DMNResult)
	assert.Equal(t, domain.StatusInvalid, result.DMNResult.QuoteValidity)
	assert.Equal(t, []string{
		"Start", "Prepare Values for DMN", "Look-up Results",
		"Result / Decision Gateway", "Set Status Invalid", "End",
	}, result.ExecutionPath)
}

func TestExecute_ValidBranch(t *testing.T) {
	result, err := newTestInterpreter().Execute(context.Background(), quoteGraph(t), quoteTable(),
		domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 30})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusValid, result.FinalStatus)
	assert.Equal(t, []string{
		"Start", "Prepare Values for DMN", "Look-up Results",
		"Result / Decision Gateway", "Set Status Valid", "End",
	}, result.ExecutionPath)
}

func TestExecute_ManualPricingOverridesMargin(t *testing.T) {
	result, err := newTestInterpreter().Execute(context.Background(), quoteGraph(t), quoteTable(),
		domain.SimulationInput{ManualPriceCost: true, DealMarginPercent: 99})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalid, result.FinalStatus)
}

func TestExecute_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		margin float64
		want   string
	}{
		{24.99, domain.StatusInvalid},
		{25.0, domain.StatusValid},
		{25.01, domain.StatusValid},
	}

	it := newTestInterpreter()
	for _, tt := range tests {
		result, err := it.Execute(context.Background(), quoteGraph(t), quoteTable(),
			domain.SimulationInput{DealMarginPercent: tt.margin})
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.FinalStatus, "margin %v", tt.margin)
	}
}

func TestExecute_ProcessVariables(t *testing.T) {
	result, err := newTestInterpreter().Execute(context.Background(), quoteGraph(t), quoteTable(),
		domain.SimulationInput{ManualPriceCost: true, DealMarginPercent: 10})
	require.NoError(t, err)

	vars := result.ProcessVariables
	assert.Equal(t, true, vars["bi_manualPriceCost"])
	assert.Equal(t, 10.0, vars["bi_dealMarginPercent"])
	// The prepare task mirrors prefixed inputs to plain names.
	assert.Equal(t, true, vars["manualPriceCost"])
	assert.Equal(t, 10.0, vars["dealMarginPercent"])
	assert.Equal(t, domain.StatusInvalid, vars[domain.VarQuoteValidity])
	assert.Equal(t, domain.StatusInvalid, vars[domain.VarStatus])
}

func TestExecute_IsDeterministic(t *testing.T) {
	it := newTestInterpreter()
	in := domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 24.5}

	first, err := it.Execute(context.Background(), quoteGraph(t), quoteTable(), in)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := it.Execute(context.Background(), quoteGraph(t), quoteTable(), in)
		require.NoError(t, err)
		assert.Equal(t, first.ExecutionPath, again.ExecutionPath)
		assert.Equal(t, first.FinalStatus, again.FinalStatus)
	}
}

func TestExecute_NoTableIsFatal(t *testing.T) {
	_, err := newTestInterpreter().Execute(context.Background(), quoteGraph(t), nil,
		domain.SimulationInput{DealMarginPercent: 30})
	assert.ErrorIs(t, err, domain.ErrNoDecisionTable)
}

func TestExecute_NilGraph(t *testing.T) {
	_, err := newTestInterpreter().Execute(context.Background(), nil, quoteTable(), domain.SimulationInput{})

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
}

func TestExecute_NoStartNode(t *testing.T) {
	graph := &domain.ProcessGraph{
		ID:    "p",
		Nodes: map[string]domain.FlowNode{"end": {ID: "end", Kind: domain.KindEnd}},
	}
	_, err := newTestInterpreter().Execute(context.Background(), graph, quoteTable(), domain.SimulationInput{})

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Contains(t, structural.Reason, "no start node")
}

func TestExecute_DeadEndIsFatal(t *testing.T) {
	graph := &domain.ProcessGraph{
		ID: "p",
		Nodes: map[string]domain.FlowNode{
			"start": {ID: "start", Kind: domain.KindStart, Outgoing: []domain.FlowEdge{
				{ID: "f1", SourceID: "start", TargetID: "stuck"},
			}},
			"stuck": {ID: "stuck", Kind: domain.KindTask},
		},
	}
	_, err := newTestInterpreter().Execute(context.Background(), graph, quoteTable(), domain.SimulationInput{})

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "stuck", structural.NodeID)
	assert.Contains(t, structural.Reason, "dead end")
}

func TestExecute_UnknownEdgeTargetIsFatal(t *testing.T) {
	graph := &domain.ProcessGraph{
		ID: "p",
		Nodes: map[string]domain.FlowNode{
			"start": {ID: "start", Kind: domain.KindStart, Outgoing: []domain.FlowEdge{
				{ID: "f1", SourceID: "start", TargetID: "ghost"},
			}},
		},
	}
	_, err := newTestInterpreter().Execute(context.Background(), graph, quoteTable(), domain.SimulationInput{})

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Contains(t, structural.Reason, "unknown node")
}

func TestExecute_CycleHitsHopLimit(t *testing.T) {
	b := dsl.New("loop")
	b.Add("start").Start("Start").Go("a")
	b.Add("a").Task("A").Go("b")
	b.Add("b").Task("B").Go("a")
	b.Add("end").End("End")
	graph, err := b.Build()
	require.NoError(t, err)

	_, err = newTestInterpreter(WithMaxHops(50)).Execute(context.Background(), graph, quoteTable(), domain.SimulationInput{})

	var structural *domain.StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Contains(t, structural.Reason, "50 hops")
}

func TestExecute_FallbackDecisionWhenGraphHasNoDecisionTask(t *testing.T) {
	b := dsl.New("plain")
	b.Add("start").Start("Start").Go("end")
	b.Add("end").End("End")
	graph, err := b.Build()
	require.NoError(t, err)

	result, err := newTestInterpreter().Execute(context.Background(), graph, quoteTable(),
		domain.SimulationInput{ManualPriceCost: false, DealMarginPercent: 40})
	require.NoError(t, err)

	// No status task ran, so the end node reports Completed, but the decision
	// result still comes from the table.
	assert.Equal(t, domain.StatusCompleted, result.FinalStatus)
	require.NotNil(t, result.DMNResult)
	assert.Equal(t, domain.StatusValid, result.DMNResult.QuoteValidity)
	assert.Equal(t, domain.StatusValid, result.ProcessVariables[domain.VarQuoteValidity])
}

func TestExecute_FallbackFailureIsFatal(t *testing.T) {
	b := dsl.New("plain")
	b.Add("start").Start("Start").Go("end")
	b.Add("end").End("End")
	graph, err := b.Build()
	require.NoError(t, err)

	_, err = newTestInterpreter().Execute(context.Background(), graph, nil, domain.SimulationInput{})
	assert.ErrorIs(t, err, domain.ErrNoDecisionTable)
}

func TestSelectGatewayTarget_GuardOrderAndLastResort(t *testing.T) {
	// Both guards test the same variable; declaration order decides.
	b := dsl.New("g")
	b.Add("start").Start("Start").Go("lookup")
	b.Add("lookup").Decision("Look-up Results").Go("gateway")
	b.Add("gateway").Gateway("Gateway").
		Branch(`quoteValidity == "Valid"`, "first").
		Branch(`quoteValidity = Valid`, "second")
	b.Add("first").Task("First").Go("end")
	b.Add("second").Task("Second").Go("end")
	b.Add("end").End("End")
	graph, err := b.Build()
	require.NoError(t, err)

	result, err := newTestInterpreter().Execute(context.Background(), graph, quoteTable(),
		domain.SimulationInput{DealMarginPercent: 30})
	require.NoError(t, err)
	assert.Contains(t, result.ExecutionPath, "First")
	assert.NotContains(t, result.ExecutionPath, "Second")

	// No guard matches and no default edge: the interpreter falls back to the
	// first declared edge instead of halting.
	result, err = newTestInterpreter().Execute(context.Background(), graph, quoteTable(),
		domain.SimulationInput{DealMarginPercent: 10})
	require.NoError(t, err)
	assert.Contains(t, result.ExecutionPath, "First")
}

func TestResolveTaskBinding(t *testing.T) {
	tests := []struct {
		name       string
		wantKind   taskBinding
		wantStatus string
	}{
		{"Prepare Values for DMN", bindingPrepareValues, ""},
		{"prepare values", bindingPrepareValues, ""},
		{"Set Status Valid", bindingSetStatus, domain.StatusValid},
		{"Set Status Invalid", bindingSetStatus, domain.StatusInvalid},
		{"Set Status 3000", bindingSetStatus, domain.StatusValid},
		{"Set Status 4000", bindingSetStatus, domain.StatusInvalid},
		{"SET STATUS INVALID", bindingSetStatus, domain.StatusInvalid},
		{"Set Status", bindingNone, ""},
		{"Send Mail", bindingNone, ""},
	}

	for _, tt := range tests {
		binding, status := resolveTaskBinding(tt.name)
		assert.Equal(t, tt.wantKind, binding, "task %q", tt.name)
		assert.Equal(t, tt.wantStatus, status, "task %q", tt.name)
	}
}

func TestEvaluateGuard(t *testing.T) {
	env := map[string]any{domain.VarQuoteValidity: "Invalid"}

	tests := []struct {
		guard string
		want  bool
	}{
		{`quoteValidity = "Invalid"`, true},
		{`quoteValidity == "Invalid"`, true},
		{`=quoteValidity = "Invalid"`, true},
		{`quoteValidity = Invalid`, true},
		{`quoteValidity = "Valid"`, false},
		{`quoteValidity = Valid`, false},
		{`otherVariable = "Invalid"`, false},
		{`dealMarginPercent > 10`, false},
		{``, false},
		{`garbage`, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, evaluateGuard(tt.guard, env), "guard %q", tt.guard)
	}
}
