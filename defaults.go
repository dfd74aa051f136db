package simulator

import (
	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
	"github.com/frhnkemal/camunda-automation-testing/pkg/dsl"
)

// defaultGraph builds the built-in quote-validation process: prepare the
// decision inputs, evaluate the table, route on the verdict, record the
// status.
func defaultGraph() *domain.ProcessGraph {
	b := dsl.New("quote-validation-default").Name("Quote Validation")
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
	if err != nil {
		// The default graph is a compile-time constant in all but syntax;
		// failing to build it is a programming error.
		panic("simulator: default process graph is malformed: " + err.Error())
	}
	return graph
}

// defaultTable is the built-in quote-validity decision: manual pricing is
// always Invalid, otherwise the 25% margin threshold decides.
func defaultTable() *domain.DecisionTable {
	return &domain.DecisionTable{
		Key:       "quote-validity-default",
		Name:      "Quote Validity",
		HitPolicy: domain.HitPolicyFirst,
		Inputs:    []string{"manualPriceCost", "dealMarginPercent"},
		Output:    domain.VarQuoteValidity,
		Rules: []domain.Rule{
			{ID: "rule-manual", Conditions: []string{"true", ""}, Output: `"Invalid"`},
			{ID: "rule-low-margin", Conditions: []string{"false", "< 25"}, Output: `"Invalid"`},
			{ID: "rule-healthy-margin", Conditions: []string{"false", ">= 25"}, Output: `"Valid"`},
		},
	}
}
