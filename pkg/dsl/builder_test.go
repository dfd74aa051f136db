package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

func TestBuild_QuoteProcess(t *testing.T) {
	b := New("quote").Name("Quote Validation")
	b.Add("start").Start("Start").Go("lookup")
	b.Add("lookup").Decision("Look-up Decision").Go("gateway")
	b.Add("gateway").Gateway("Result Gateway").
		Branch(`quoteValidity = "Invalid"`, "invalid").
		Default("valid")
	b.Add("invalid").Task("Set Status 4000").Go("end")
	b.Add("valid").Task("Set Status 3000").Go("end")
	b.Add("end").End("End")

	graph, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "quote", graph.ID)
	assert.Equal(t, "Quote Validation", graph.Name)
	assert.Len(t, graph.Nodes, 6)

	gateway := graph.Nodes["gateway"]
	require.Len(t, gateway.Outgoing, 2)
	assert.Equal(t, `quoteValidity = "Invalid"`, gateway.Outgoing[0].Guard)
	assert.True(t, gateway.Outgoing[1].IsDefault)
	assert.Equal(t, domain.KindGateway, gateway.Kind)
	assert.Equal(t, domain.KindDecisionTask, graph.Nodes["lookup"].Kind)
}

func TestBuild_EdgeIDsAreSequential(t *testing.T) {
	b := New("p")
	b.Add("start").Start("Start").Go("a")
	b.Add("a").Task("A").Go("b")
	b.Add("b").End("B")

	graph, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "flow-1", graph.Nodes["start"].Outgoing[0].ID)
	assert.Equal(t, "flow-2", graph.Nodes["a"].Outgoing[0].ID)
}

func TestAdd_ReturnsExistingNode(t *testing.T) {
	b := New("p")
	first := b.Add("start").Start("Start")
	second := b.Add("start")

	assert.Same(t, first, second)
}

func TestBuild_UnknownTarget(t *testing.T) {
	b := New("p")
	b.Add("start").Start("Start").Go("missing")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target "missing"`)
}

func TestBuild_StartNodeCount(t *testing.T) {
	t.Run("no start", func(t *testing.T) {
		b := New("p")
		b.Add("a").Task("A").Go("b")
		b.Add("b").End("B")

		_, err := b.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one start node, got 0")
	})

	t.Run("two starts", func(t *testing.T) {
		b := New("p")
		b.Add("a").Start("A").Go("end")
		b.Add("b").Start("B").Go("end")
		b.Add("end").End("End")

		_, err := b.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exactly one start node, got 2")
	})
}

func TestBuild_EndWithOutgoing(t *testing.T) {
	b := New("p")
	b.Add("start").Start("Start").Go("end")
	// Go after End re-attaches an outgoing edge to a terminal node.
	b.Add("end").End("End").Go("start")

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not have outgoing edges")
}
