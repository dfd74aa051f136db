package runtime

import (
	"log/slog"
	"strings"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// Task semantics are resolved from human-readable task names by substring
// convention: "prepare values" mirrors prefixed inputs, "set status" assigns
// the terminal status. This stands in for a richer input/output mapping
// language; resolveTaskBinding is the only place that interprets names, so a
// future mapping model can replace it without touching the traversal loop.
// The status-literal detection (3000/4000 vs Valid/Invalid) is heuristic and
// can misclassify an unusually named task.

type taskBinding int

const (
	bindingNone taskBinding = iota
	bindingPrepareValues
	bindingSetStatus
)

// resolveTaskBinding classifies a task by its display name, case-insensitive.
// For status-assignment tasks it also returns the status literal.
func resolveTaskBinding(name string) (taskBinding, string) {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "prepare values"):
		return bindingPrepareValues, ""
	case strings.Contains(lower, "set status"):
		// "invalid"/"4000" must be checked first: every "invalid" contains "valid".
		switch {
		case strings.Contains(lower, "invalid"), strings.Contains(lower, "4000"):
			return bindingSetStatus, domain.StatusInvalid
		case strings.Contains(lower, "valid"), strings.Contains(lower, "3000"):
			return bindingSetStatus, domain.StatusValid
		}
	}
	return bindingNone, ""
}

// applyTaskBinding mutates the environment according to the task's resolved
// binding. Tasks matching neither convention are a no-op pass-through.
func applyTaskBinding(node domain.FlowNode, env map[string]any, logger *slog.Logger) {
	binding, status := resolveTaskBinding(node.Name)
	switch binding {
	case bindingPrepareValues:
		// Collect first, then write: mirroring while ranging over the same
		// map would make the visit order observable.
		mirrored := make(map[string]any)
		for k, v := range env {
			if name, found := cutInputPrefix(k); found {
				mirrored[name] = v
			}
		}
		for k, v := range mirrored {
			env[k] = v
		}
		logger.Debug("mirrored prefixed variables", "node", node.ID, "count", len(mirrored))

	case bindingSetStatus:
		env[domain.VarStatus] = status
		logger.Debug("status assigned", "node", node.ID, "status", status)
	}
}

// cutInputPrefix strips the external-input prefix from a variable name.
func cutInputPrefix(key string) (string, bool) {
	name, found := strings.CutPrefix(key, domain.VarInputPrefix)
	if !found || name == "" {
		return "", false
	}
	return name, true
}
