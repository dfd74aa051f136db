package dsl

import "github.com/frhnkemal/camunda-automation-testing/pkg/domain"

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	node    domain.FlowNode
	builder *Builder
}

// Start marks the node as the process entry point.
func (n *NodeBuilder) Start(name string) *NodeBuilder {
	n.node.Kind = domain.KindStart
	n.node.Name = name
	return n
}

// Task marks the node as a plain task. Task semantics are resolved from the
// name by the interpreter's convention mapping.
func (n *NodeBuilder) Task(name string) *NodeBuilder {
	n.node.Kind = domain.KindTask
	n.node.Name = name
	return n
}

// Decision marks the node as a decision task delegating to the table evaluator.
func (n *NodeBuilder) Decision(name string) *NodeBuilder {
	n.node.Kind = domain.KindDecisionTask
	n.node.Name = name
	return n
}

// Gateway marks the node as an exclusive gateway.
func (n *NodeBuilder) Gateway(name string) *NodeBuilder {
	n.node.Kind = domain.KindGateway
	n.node.Name = name
	return n
}

// End marks the node as a terminal node.
func (n *NodeBuilder) End(name string) *NodeBuilder {
	n.node.Kind = domain.KindEnd
	n.node.Name = name
	n.node.Outgoing = nil
	return n
}

// Go adds an unconditional edge to the target node.
func (n *NodeBuilder) Go(target string) *NodeBuilder {
	n.node.Outgoing = append(n.node.Outgoing, domain.FlowEdge{
		ID:       n.builder.nextEdgeID(),
		SourceID: n.node.ID,
		TargetID: target,
	})
	return n
}

// Branch adds a guarded edge to the target node. Guards are evaluated in the
// order branches were declared.
func (n *NodeBuilder) Branch(guard string, target string) *NodeBuilder {
	n.node.Outgoing = append(n.node.Outgoing, domain.FlowEdge{
		ID:       n.builder.nextEdgeID(),
		SourceID: n.node.ID,
		TargetID: target,
		Guard:    guard,
	})
	return n
}

// Default adds the edge taken when no guard on this gateway matches.
func (n *NodeBuilder) Default(target string) *NodeBuilder {
	n.node.Outgoing = append(n.node.Outgoing, domain.FlowEdge{
		ID:        n.builder.nextEdgeID(),
		SourceID:  n.node.ID,
		TargetID:  target,
		IsDefault: true,
	})
	return n
}

// Build returns the underlying domain.FlowNode.
// This is primarily used by the Builder, but exposed for advanced usage.
func (n *NodeBuilder) Build() domain.FlowNode {
	return n.node
}
