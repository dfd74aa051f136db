package dmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

const quoteTableXML = `<?xml version="1.0" encoding="UTF-8"?>
<definitions xmlns="https://www.omg.org/spec/DMN/20191111/MODEL/"
             id="Definitions_1" name="Quote Validity" namespace="http://camunda.org/schema/1.0/dmn">
  <decision id="quote-validity" name="Quote Validity">
    <decisionTable id="table-1" hitPolicy="FIRST">
      <input id="input-1" label="Manual Price Cost">
        <inputExpression id="ie-1" typeRef="boolean">
          <text>manualPriceCost</text>
        </inputExpression>
      </input>
      <input id="input-2" label="Deal Margin Percent">
        <inputExpression id="ie-2" typeRef="number">
          <text>dealMarginPercent</text>
        </inputExpression>
      </input>
      <output id="output-1" label="Quote Validity" name="quoteValidity" typeRef="string"/>
      <rule id="rule-1">
        <inputEntry><text>true</text></inputEntry>
        <inputEntry><text></text></inputEntry>
        <outputEntry><text>"Invalid"</text></outputEntry>
      </rule>
      <rule id="rule-2">
        <inputEntry><text>false</text></inputEntry>
        <inputEntry><text>&lt; 25</text></inputEntry>
        <outputEntry><text>"Invalid"</text></outputEntry>
      </rule>
      <rule id="rule-3">
        <inputEntry><text>false</text></inputEntry>
        <inputEntry><text>&gt;= 25</text></inputEntry>
        <outputEntry><text>"Valid"</text></outputEntry>
      </rule>
    </decisionTable>
  </decision>
</definitions>`

func TestParse_BuildsDecisionTable(t *testing.T) {
	table, err := Parse([]byte(quoteTableXML))
	require.NoError(t, err)

	assert.Equal(t, "quote-validity", table.Key)
	assert.Equal(t, "Quote Validity", table.Name)
	assert.Equal(t, domain.HitPolicyFirst, table.HitPolicy)
	assert.Equal(t, []string{"manualPriceCost", "dealMarginPercent"}, table.Inputs)
	assert.Equal(t, "quoteValidity", table.Output)

	require.Len(t, table.Rules, 3)
	assert.Equal(t, domain.Rule{ID: "rule-1", Conditions: []string{"true", ""}, Output: `"Invalid"`}, table.Rules[0])
	assert.Equal(t, domain.Rule{ID: "rule-2", Conditions: []string{"false", "< 25"}, Output: `"Invalid"`}, table.Rules[1])
	assert.Equal(t, domain.Rule{ID: "rule-3", Conditions: []string{"false", ">= 25"}, Output: `"Valid"`}, table.Rules[2])
}

func TestParse_KeyFallsBackToName(t *testing.T) {
	xml := `<definitions><decision name="Only Name"><decisionTable>
		<input><inputExpression><text>x</text></inputExpression></input>
		<output name="y"/>
		<rule><inputEntry><text>-</text></inputEntry><outputEntry><text>"a"</text></outputEntry></rule>
	</decisionTable></decision></definitions>`

	table, err := Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "Only Name", table.Key)
}

func TestParse_UnnamedOutputDefaultsToQuoteValidity(t *testing.T) {
	xml := `<definitions><decision id="d"><decisionTable>
		<input><inputExpression><text>x</text></inputExpression></input>
		<output/>
		<rule><inputEntry><text>-</text></inputEntry><outputEntry><text>"a"</text></outputEntry></rule>
	</decisionTable></decision></definitions>`

	table, err := Parse([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, domain.VarQuoteValidity, table.Output)
}

func TestParse_HitPolicy(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", domain.HitPolicyFirst},
		{"FIRST", domain.HitPolicyFirst},
		{"first", domain.HitPolicyFirst},
		{"UNIQUE", domain.HitPolicyUnique},
		{"COLLECT", domain.HitPolicyFirst},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseHitPolicy(tt.raw), "hit policy %q", tt.raw)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"Malformed XML", `<definitions><decision`, "parse dmn"},
		{"No Decision", `<definitions/>`, "no decision element"},
		{"No Table", `<definitions><decision id="d"/></definitions>`, "no decision table"},
		{
			"No Output",
			`<definitions><decision id="d"><decisionTable><input><inputExpression><text>x</text></inputExpression></input></decisionTable></decision></definitions>`,
			"no output",
		},
		{
			"Rule Arity Mismatch",
			`<definitions><decision id="d"><decisionTable>
				<input><inputExpression><text>x</text></inputExpression></input>
				<input><inputExpression><text>y</text></inputExpression></input>
				<output name="out"/>
				<rule><inputEntry><text>-</text></inputEntry><outputEntry><text>"a"</text></outputEntry></rule>
			</decisionTable></decision></definitions>`,
			"input entries",
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
