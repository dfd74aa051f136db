// Package validator lints process graphs before they are accepted.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// ValidateGraph checks a graph for the structural defects that would make an
// execution fail: a missing start node, edges to unknown nodes, non-end nodes
// with nowhere to go, end nodes with outgoing flows, and nodes the start can
// never reach. All findings are reported at once.
func ValidateGraph(graph *domain.ProcessGraph) error {
	if graph == nil {
		return fmt.Errorf("no process graph")
	}

	start, ok := graph.StartNode()
	if !ok {
		return fmt.Errorf("graph %q has no start node", graph.ID)
	}

	var findings []string

	// Crawl from the start, collecting defects as they surface.
	visited := make(map[string]bool)
	queue := []string{start.ID}
	for len(queue) > 0 {
		currentID := queue[0]
		queue = queue[1:]

		if visited[currentID] {
			continue
		}
		visited[currentID] = true

		node, ok := graph.NodeByID(currentID)
		if !ok {
			continue
		}

		switch {
		case node.Kind == domain.KindEnd && len(node.Outgoing) > 0:
			findings = append(findings, fmt.Sprintf("end node %q has outgoing flows", node.ID))
		case node.Kind != domain.KindEnd && len(node.Outgoing) == 0:
			findings = append(findings, fmt.Sprintf("node %q is a dead end", node.ID))
		}

		for _, edge := range node.Outgoing {
			if _, ok := graph.NodeByID(edge.TargetID); !ok {
				findings = append(findings, fmt.Sprintf("flow %q targets missing node %q", edge.ID, edge.TargetID))
				continue
			}
			if !visited[edge.TargetID] {
				queue = append(queue, edge.TargetID)
			}
		}
	}

	for id := range graph.Nodes {
		if !visited[id] {
			findings = append(findings, fmt.Sprintf("node %q is unreachable from the start node", id))
		}
	}

	if len(findings) > 0 {
		// Map order is not stable; sort for a reproducible report.
		sort.Strings(findings)
		return fmt.Errorf("found %d errors:\n- %s", len(findings), strings.Join(findings, "\n- "))
	}
	return nil
}
