// Package dmn parses DMN decision-table XML into the decision model.
//
// Like the BPMN parser it matches by local element name and reads only what
// the evaluator needs: the first decision's table, its input expressions,
// output name, hit policy, and rules.
package dmn

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

type xmlDefinitions struct {
	Decisions []xmlDecision `xml:"decision"`
}

type xmlDecision struct {
	ID    string            `xml:"id,attr"`
	Name  string            `xml:"name,attr"`
	Table *xmlDecisionTable `xml:"decisionTable"`
}

type xmlDecisionTable struct {
	HitPolicy string      `xml:"hitPolicy,attr"`
	Inputs    []xmlInput  `xml:"input"`
	Outputs   []xmlOutput `xml:"output"`
	Rules     []xmlRule   `xml:"rule"`
}

type xmlInput struct {
	Label      string `xml:"label,attr"`
	Expression string `xml:"inputExpression>text"`
}

type xmlOutput struct {
	Name  string `xml:"name,attr"`
	Label string `xml:"label,attr"`
}

type xmlRule struct {
	ID            string   `xml:"id,attr"`
	InputEntries  []string `xml:"inputEntry>text"`
	OutputEntries []string `xml:"outputEntry>text"`
}

// Parse reads DMN XML and builds a decision table from the first decision
// element that carries one. The decision id doubles as the table key, falling
// back to the decision name.
func Parse(data []byte) (*domain.DecisionTable, error) {
	var defs xmlDefinitions
	if err := xml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse dmn: %w", err)
	}
	if len(defs.Decisions) == 0 {
		return nil, errors.New("parse dmn: no decision element")
	}

	var decision *xmlDecision
	for i := range defs.Decisions {
		if defs.Decisions[i].Table != nil {
			decision = &defs.Decisions[i]
			break
		}
	}
	if decision == nil {
		return nil, errors.New("parse dmn: no decision table")
	}

	key := decision.ID
	if key == "" {
		key = decision.Name
	}
	if key == "" {
		return nil, errors.New("parse dmn: decision has neither id nor name")
	}

	src := decision.Table
	table := &domain.DecisionTable{
		Key:       key,
		Name:      decision.Name,
		HitPolicy: parseHitPolicy(src.HitPolicy),
	}

	for _, in := range src.Inputs {
		expr := strings.TrimSpace(in.Expression)
		if expr == "" {
			return nil, errors.New("parse dmn: input without expression")
		}
		table.Inputs = append(table.Inputs, expr)
	}

	if len(src.Outputs) == 0 {
		return nil, errors.New("parse dmn: decision table has no output")
	}
	table.Output = src.Outputs[0].Name
	if table.Output == "" {
		table.Output = domain.VarQuoteValidity
	}

	for i, r := range src.Rules {
		if len(r.InputEntries) != len(table.Inputs) {
			return nil, fmt.Errorf("parse dmn: rule %d has %d input entries, table has %d inputs",
				i+1, len(r.InputEntries), len(table.Inputs))
		}
		if len(r.OutputEntries) == 0 {
			return nil, fmt.Errorf("parse dmn: rule %d has no output entry", i+1)
		}
		conditions := make([]string, len(r.InputEntries))
		for j, entry := range r.InputEntries {
			conditions[j] = strings.TrimSpace(entry)
		}
		table.Rules = append(table.Rules, domain.Rule{
			ID:         r.ID,
			Conditions: conditions,
			Output:     strings.TrimSpace(r.OutputEntries[0]),
		})
	}

	return table, nil
}

// parseHitPolicy maps the DMN attribute to a supported policy. FIRST is the
// DMN default when the attribute is absent; anything unrecognized also
// degrades to FIRST, which is safe for the single-output tables handled here.
func parseHitPolicy(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "FIRST":
		return domain.HitPolicyFirst
	case "UNIQUE":
		return domain.HitPolicyUnique
	default:
		return domain.HitPolicyFirst
	}
}
