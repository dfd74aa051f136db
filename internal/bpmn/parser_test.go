package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

const quoteProcessXML = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL"
                  xmlns:zeebe="http://camunda.org/schema/zeebe/1.0"
                  id="Definitions_1" targetNamespace="http://bpmn.io/schema/bpmn">
  <bpmn:process id="quote-validation" name="Quote Validation" isExecutable="true">
    <bpmn:startEvent id="start" name="Start">
      <bpmn:outgoing>flow-1</bpmn:outgoing>
    </bpmn:startEvent>
    <bpmn:serviceTask id="prepare" name="Prepare Values for DMN"/>
    <bpmn:businessRuleTask id="lookup" name="Look-up Results"/>
    <bpmn:exclusiveGateway id="gateway" name="Result / Decision Gateway" default="flow-5"/>
    <bpmn:serviceTask id="set-invalid" name="Set Status Invalid"/>
    <bpmn:serviceTask id="set-valid" name="Set Status Valid"/>
    <bpmn:endEvent id="end" name="End"/>
    <bpmn:sequenceFlow id="flow-1" sourceRef="start" targetRef="prepare"/>
    <bpmn:sequenceFlow id="flow-2" sourceRef="prepare" targetRef="lookup"/>
    <bpmn:sequenceFlow id="flow-3" sourceRef="lookup" targetRef="gateway"/>
    <bpmn:sequenceFlow id="flow-4" sourceRef="gateway" targetRef="set-invalid">
      <bpmn:conditionExpression>=quoteValidity = "Invalid"</bpmn:conditionExpression>
    </bpmn:sequenceFlow>
    <bpmn:sequenceFlow id="flow-5" sourceRef="gateway" targetRef="set-valid"/>
    <bpmn:sequenceFlow id="flow-6" sourceRef="set-invalid" targetRef="end"/>
    <bpmn:sequenceFlow id="flow-7" sourceRef="set-valid" targetRef="end"/>
  </bpmn:process>
</bpmn:definitions>`

func TestParse_BuildsGraphFromNamespacedXML(t *testing.T) {
	graph, err := Parse([]byte(quoteProcessXML))
	require.NoError(t, err)

	assert.Equal(t, "quote-validation", graph.ID)
	assert.Equal(t, "Quote Validation", graph.Name)
	require.Len(t, graph.Nodes, 7)

	start, ok := graph.StartNode()
	require.True(t, ok)
	assert.Equal(t, "start", start.ID)
	require.Len(t, start.Outgoing, 1)
	assert.Equal(t, "prepare", start.Outgoing[0].TargetID)

	prepare, _ := graph.NodeByID("prepare")
	assert.Equal(t, domain.KindTask, prepare.Kind)

	lookup, _ := graph.NodeByID("lookup")
	assert.Equal(t, domain.KindDecisionTask, lookup.Kind)

	end, _ := graph.NodeByID("end")
	assert.Equal(t, domain.KindEnd, end.Kind)
	assert.Empty(t, end.Outgoing)
}

func TestParse_GatewayEdgesKeepDocumentOrderAndDefault(t *testing.T) {
	graph, err := Parse([]byte(quoteProcessXML))
	require.NoError(t, err)

	gateway, ok := graph.NodeByID("gateway")
	require.True(t, ok)
	require.Len(t, gateway.Outgoing, 2)

	guarded := gateway.Outgoing[0]
	assert.Equal(t, "flow-4", guarded.ID)
	assert.Equal(t, `=quoteValidity = "Invalid"`, guarded.Guard)
	assert.False(t, guarded.IsDefault)

	fallback := gateway.Outgoing[1]
	assert.Equal(t, "flow-5", fallback.ID)
	assert.Empty(t, fallback.Guard)
	assert.True(t, fallback.IsDefault)
}

func TestParse_ServiceTaskDecisionClassification(t *testing.T) {
	tests := []struct {
		name string
		task string
		want string
	}{
		{"By Name Hint DMN", `<serviceTask id="t" name="Call DMN table"/>`, domain.KindDecisionTask},
		{"By Name Hint Decision", `<serviceTask id="t" name="Quote decision"/>`, domain.KindDecisionTask},
		{"By Name Hint Look-up", `<serviceTask id="t" name="Look-up Results"/>`, domain.KindDecisionTask},
		{"By Type Attribute", `<serviceTask id="t" name="Evaluate" camunda:type="dmn"/>`, domain.KindDecisionTask},
		{"By Implementation", `<serviceTask id="t" name="Evaluate" implementation="dmn-engine"/>`, domain.KindDecisionTask},
		{"Plain Service Task", `<serviceTask id="t" name="Send Mail"/>`, domain.KindTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xml := `<definitions xmlns:camunda="http://camunda.org/schema/1.0/bpmn"><process id="p">` +
				tt.task + `</process></definitions>`
			graph, err := Parse([]byte(xml))
			require.NoError(t, err)
			node, ok := graph.NodeByID("t")
			require.True(t, ok)
			assert.Equal(t, tt.want, node.Kind)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"Malformed XML", `<definitions><process`, "parse bpmn"},
		{"No Process", `<definitions/>`, "no process element"},
		{
			"Unknown Flow Source",
			`<definitions><process id="p"><startEvent id="s"/><sequenceFlow id="f" sourceRef="ghost" targetRef="s"/></process></definitions>`,
			"unknown source",
		},
		{
			"Duplicate Node ID",
			`<definitions><process id="p"><startEvent id="s"/><endEvent id="s"/></process></definitions>`,
			"duplicate flow node id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_UnnamedProcessGetsFallbackID(t *testing.T) {
	graph, err := Parse([]byte(`<definitions><process><startEvent id="s"/></process></definitions>`))
	require.NoError(t, err)
	assert.Equal(t, "process", graph.ID)
}
