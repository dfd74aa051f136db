package runtime

import (
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/frhnkemal/camunda-automation-testing/pkg/domain"
)

// evaluateGuard reports whether an edge guard matches the current variables.
//
// Guard support is deliberately narrow: equality tests against quoteValidity
// ("=" or "==", quoted or bare literal, optional leading "=" in the
// Zeebe/Camunda expression style). Any other guard text fails closed to
// false rather than raising.
func evaluateGuard(guard string, env map[string]any) bool {
	g := strings.TrimSpace(guard)
	g = strings.TrimSpace(strings.TrimPrefix(g, "="))

	program, ok := normalizeGuard(g)
	if !ok {
		return false
	}

	out, err := expr.Eval(program, map[string]any{
		domain.VarQuoteValidity: env[domain.VarQuoteValidity],
	})
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// normalizeGuard rewrites `quoteValidity = <literal>` (or `==`) into an expr
// program. Guards over any other variable are rejected.
func normalizeGuard(g string) (string, bool) {
	lhs, rhs, found := strings.Cut(g, "==")
	if !found {
		lhs, rhs, found = strings.Cut(g, "=")
	}
	if !found {
		return "", false
	}

	if strings.TrimSpace(lhs) != domain.VarQuoteValidity {
		return "", false
	}

	rhs = strings.TrimSpace(rhs)
	switch {
	case strings.HasPrefix(rhs, `"`) && strings.HasSuffix(rhs, `"`) && len(rhs) >= 2:
		// Already a string literal.
	case isBareWord(rhs):
		rhs = strconv.Quote(rhs)
	default:
		return "", false
	}

	return domain.VarQuoteValidity + " == " + rhs, true
}

func isBareWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
