package domain

// NodeKind constants define the closed set of flow-node kinds the interpreter
// dispatches on.
const (
	// KindStart is the single entry point of a process graph.
	KindStart = "start"
	// KindTask is a plain task; its semantics are resolved from its name.
	KindTask = "task"
	// KindDecisionTask delegates to the decision-table evaluator.
	KindDecisionTask = "decisionTask"
	// KindGateway is an exclusive gateway routing on edge guards.
	KindGateway = "gateway"
	// KindEnd terminates the traversal and yields the final status.
	KindEnd = "end"
)

// FlowNode represents a single node in the process graph.
type FlowNode struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Kind string `json:"kind"`

	// Outgoing holds this node's outgoing edges in declaration order.
	// Declaration order matters: gateways evaluate guards in this order.
	Outgoing []FlowEdge `json:"outgoing,omitempty"`
}

// DisplayName returns the name used in execution paths: the node's own name,
// falling back to a kind-derived default, then to the node ID.
func (n FlowNode) DisplayName() string {
	if n.Name != "" {
		return n.Name
	}
	switch n.Kind {
	case KindStart:
		return "Start"
	case KindEnd:
		return "End"
	case KindGateway:
		return "Gateway"
	case KindTask, KindDecisionTask:
		return "Service Task"
	}
	return n.ID
}

// FlowEdge connects a source node to a target node. Nodes are referenced by ID
// through the graph's registry rather than by pointer, so the graph stays the
// single owner of all nodes and edges.
type FlowEdge struct {
	ID       string `json:"id"`
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`

	// Guard is the raw condition expression carried by the edge.
	// Empty means the edge is unconditional.
	Guard string `json:"guard,omitempty"`

	// IsDefault marks the edge a gateway falls back to when no guard matches.
	IsDefault bool `json:"isDefault,omitempty"`
}

// ProcessGraph is an immutable in-memory flow graph. It is fully formed by a
// parser (or the dsl builder) before publication; concurrent executions may
// share one graph as long as nobody mutates it in place.
type ProcessGraph struct {
	ID    string              `json:"id"`
	Name  string              `json:"name,omitempty"`
	Nodes map[string]FlowNode `json:"nodes"`
}

// NodeByID resolves a node from the graph's flat registry.
func (g *ProcessGraph) NodeByID(id string) (FlowNode, bool) {
	n, ok := g.Nodes[id]
	return n, ok
}

// StartNode returns the graph's entry node.
func (g *ProcessGraph) StartNode() (FlowNode, bool) {
	for _, n := range g.Nodes {
		if n.Kind == KindStart {
			return n, true
		}
	}
	return FlowNode{}, false
}
