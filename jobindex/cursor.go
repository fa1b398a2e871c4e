package jobindex

import (
	"strconv"
	"strings"
)

// ParseCursor reads a feed cursor as given on a command line or query
// string. An empty token means the first page.
func ParseCursor(tok string) (*int64, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || id < 0 {
		return nil, InvalidFilterError("cursor", "cursor must be a non-negative posting id")
	}
	return &id, nil
}

// FormatCursor is the inverse of ParseCursor.
func FormatCursor(c *int64) string {
	if c == nil {
		return ""
	}
	return strconv.FormatInt(*c, 10)
}
