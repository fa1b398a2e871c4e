package planner

import "strings"

// escapeLike escapes %, _ and \ so s matches literally inside a LIKE
// pattern declared with ESCAPE '\'.
func escapeLike(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '%', '_', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// containsPattern wraps s for a substring LIKE match.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

func joinAnd(parts []string) string {
	return strings.Join(parts, " AND ")
}

func joinOr(parts []string) string {
	return strings.Join(parts, " OR ")
}
