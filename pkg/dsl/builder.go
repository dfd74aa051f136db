package dsl

import (
	"fmt"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	id      string
	name    string
	nodes   map[string]*NodeBuilder
	order   []string
	edgeSeq int
}

// New creates a new graph builder for a process with the given id.
func New(id string) *Builder {
	return &Builder{
		id:    id,
		nodes: make(map[string]*NodeBuilder),
	}
}

// Name sets the process display name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Add creates a new node in the graph.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	if nb, ok := b.nodes[id]; ok {
		return nb
	}
	nb := &NodeBuilder{
		node: domain.FlowNode{
			ID:   id,
			Kind: domain.KindTask,
		},
		builder: b,
	}
	b.nodes[id] = nb
	b.order = append(b.order, id)
	return nb
}

func (b *Builder) nextEdgeID() string {
	b.edgeSeq++
	return fmt.Sprintf("flow-%d", b.edgeSeq)
}

// Build compiles the builder into an immutable ProcessGraph.
func (b *Builder) Build() (*domain.ProcessGraph, error) {
	graph := &domain.ProcessGraph{
		ID:    b.id,
		Name:  b.name,
		Nodes: make(map[string]domain.FlowNode, len(b.nodes)),
	}

	starts := 0
	for _, id := range b.order {
		nb := b.nodes[id]
		node := nb.node

		if node.Kind == domain.KindStart {
			starts++
		}
		if node.Kind == domain.KindEnd && len(node.Outgoing) > 0 {
			return nil, fmt.Errorf("end node %q must not have outgoing edges", id)
		}
		for _, edge := range node.Outgoing {
			if _, ok := b.nodes[edge.TargetID]; !ok {
				return nil, fmt.Errorf("node %q references unknown target %q", id, edge.TargetID)
			}
		}

		graph.Nodes[id] = node
	}

	if starts != 1 {
		return nil, fmt.Errorf("graph must have exactly one start node, got %d", starts)
	}

	return graph, nil
}
