package decision

import (
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
)

// matchesCondition reports whether a single unary test accepts the value.
// Supported forms: empty or "-" (match anything), quoted or bare literals
// (equality), and numeric comparisons (<, <=, >, >=). Anything else fails
// closed to false — an unparseable condition never matches.
func matchesCondition(cond string, value any) bool {
	cond = strings.TrimSpace(cond)
	if cond == "" || cond == "-" {
		return true
	}

	program, ok := normalizeUnaryTest(cond)
	if !ok {
		return false
	}

	out, err := expr.Eval(program, map[string]any{"input": value})
	if err != nil {
		// Type mismatches (comparing a bool against a number) land here.
		return false
	}

	b, ok := out.(bool)
	return ok && b
}

// normalizeUnaryTest rewrites a DMN unary test into a boolean expression over
// the reserved "input" variable, suitable for expr evaluation.
func normalizeUnaryTest(cond string) (string, bool) {
	// Comparison operators; two-character forms first.
	for _, op := range []string{"<=", ">=", "<", ">"} {
		if rest, found := strings.CutPrefix(cond, op); found {
			rest = strings.TrimSpace(rest)
			if !isNumericLiteral(rest) {
				return "", false
			}
			return "input " + op + " " + rest, true
		}
	}

	if strings.HasPrefix(cond, `"`) && strings.HasSuffix(cond, `"`) && len(cond) >= 2 {
		return "input == " + cond, true
	}
	if cond == "true" || cond == "false" {
		return "input == " + cond, true
	}
	if isNumericLiteral(cond) {
		return "input == " + cond, true
	}
	if isIdentifier(cond) {
		// Bare word: treated as a string literal ("Invalid" written unquoted).
		return "input == " + strconv.Quote(cond), true
	}

	return "", false
}

func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
