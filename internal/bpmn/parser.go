// Package bpmn parses BPMN 2.0 XML into the process-graph model.
//
// Parsing is deliberately shallow: it reads flow nodes and sequence flows of
// the first process element and ignores diagram interchange, lanes, and
// subprocesses. Element names are matched by local name, so any namespace
// prefix convention works.
package bpmn

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// decisionNameHints classify a service task as a decision task by its label
// when the model does not mark it explicitly.
var decisionNameHints = []string{"dmn", "decision", "look-up"}

type xmlDefinitions struct {
	Processes []xmlProcess `xml:"process"`
}

type xmlProcess struct {
	ID                string            `xml:"id,attr"`
	Name              string            `xml:"name,attr"`
	StartEvents       []xmlFlowNode     `xml:"startEvent"`
	EndEvents         []xmlFlowNode     `xml:"endEvent"`
	Tasks             []xmlFlowNode     `xml:"task"`
	UserTasks         []xmlFlowNode     `xml:"userTask"`
	ScriptTasks       []xmlFlowNode     `xml:"scriptTask"`
	SendTasks         []xmlFlowNode     `xml:"sendTask"`
	ReceiveTasks      []xmlFlowNode     `xml:"receiveTask"`
	ServiceTasks      []xmlServiceTask  `xml:"serviceTask"`
	BusinessRuleTasks []xmlFlowNode     `xml:"businessRuleTask"`
	Gateways          []xmlGateway      `xml:"exclusiveGateway"`
	SequenceFlows     []xmlSequenceFlow `xml:"sequenceFlow"`
}

type xmlFlowNode struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type xmlServiceTask struct {
	ID             string `xml:"id,attr"`
	Name           string `xml:"name,attr"`
	Type           string `xml:"type,attr"`
	Implementation string `xml:"implementation,attr"`
}

type xmlGateway struct {
	ID      string `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Default string `xml:"default,attr"`
}

type xmlSequenceFlow struct {
	ID        string `xml:"id,attr"`
	SourceRef string `xml:"sourceRef,attr"`
	TargetRef string `xml:"targetRef,attr"`
	Condition string `xml:"conditionExpression"`
}

// Parse reads BPMN XML and builds a process graph from its first process
// element. Sequence flows keep their document order, which the interpreter
// relies on for gateway evaluation.
func Parse(data []byte) (*domain.ProcessGraph, error) {
	var defs xmlDefinitions
	if err := xml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse bpmn: %w", err)
	}
	if len(defs.Processes) == 0 {
		return nil, errors.New("parse bpmn: no process element")
	}

	proc := defs.Processes[0]
	graph := &domain.ProcessGraph{
		ID:    proc.ID,
		Name:  proc.Name,
		Nodes: make(map[string]domain.FlowNode),
	}
	if graph.ID == "" {
		graph.ID = "process"
	}

	add := func(id, name, kind string) error {
		if id == "" {
			return errors.New("parse bpmn: flow node without id")
		}
		if _, dup := graph.Nodes[id]; dup {
			return fmt.Errorf("parse bpmn: duplicate flow node id %q", id)
		}
		graph.Nodes[id] = domain.FlowNode{ID: id, Name: name, Kind: kind}
		return nil
	}

	for _, n := range proc.StartEvents {
		if err := add(n.ID, n.Name, domain.KindStart); err != nil {
			return nil, err
		}
	}
	for _, n := range proc.EndEvents {
		if err := add(n.ID, n.Name, domain.KindEnd); err != nil {
			return nil, err
		}
	}
	for _, group := range [][]xmlFlowNode{proc.Tasks, proc.UserTasks, proc.ScriptTasks, proc.SendTasks, proc.ReceiveTasks} {
		for _, n := range group {
			if err := add(n.ID, n.Name, domain.KindTask); err != nil {
				return nil, err
			}
		}
	}
	for _, n := range proc.ServiceTasks {
		kind := domain.KindTask
		if isDecisionTask(n) {
			kind = domain.KindDecisionTask
		}
		if err := add(n.ID, n.Name, kind); err != nil {
			return nil, err
		}
	}
	for _, n := range proc.BusinessRuleTasks {
		if err := add(n.ID, n.Name, domain.KindDecisionTask); err != nil {
			return nil, err
		}
	}

	defaults := make(map[string]string, len(proc.Gateways))
	for _, g := range proc.Gateways {
		if err := add(g.ID, g.Name, domain.KindGateway); err != nil {
			return nil, err
		}
		if g.Default != "" {
			defaults[g.ID] = g.Default
		}
	}

	for _, flow := range proc.SequenceFlows {
		source, ok := graph.Nodes[flow.SourceRef]
		if !ok {
			return nil, fmt.Errorf("parse bpmn: sequence flow %q references unknown source %q", flow.ID, flow.SourceRef)
		}
		source.Outgoing = append(source.Outgoing, domain.FlowEdge{
			ID:        flow.ID,
			SourceID:  flow.SourceRef,
			TargetID:  flow.TargetRef,
			Guard:     strings.TrimSpace(flow.Condition),
			IsDefault: defaults[flow.SourceRef] == flow.ID,
		})
		graph.Nodes[flow.SourceRef] = source
	}

	return graph, nil
}

// isDecisionTask reports whether a service task calls a decision table,
// either by explicit implementation attributes or by naming convention.
func isDecisionTask(task xmlServiceTask) bool {
	if strings.EqualFold(task.Type, "dmn") {
		return true
	}
	if strings.Contains(strings.ToLower(task.Implementation), "dmn") {
		return true
	}
	name := strings.ToLower(task.Name)
	for _, hint := range decisionNameHints {
		if strings.Contains(name, hint) {
			return true
		}
	}
	return false
}
