// Package skills finds catalog skills mentioned in free text.
package skills

import (
	"strings"
	"sync"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/internal/wordmatch"
	"github.com/eqhq/jobindex/jobindex/model"
)

type entry struct {
	ref      model.SkillRef
	patterns []string
}

// Matcher is safe for concurrent use; it holds no mutable state after
// construction.
type Matcher struct {
	entries []entry
}

// NewMatcher compiles the patterns of skills in the given order. Empty
// patterns are dropped.
func NewMatcher(skills []catalog.Skill) *Matcher {
	m := &Matcher{entries: make([]entry, 0, len(skills))}
	for _, s := range skills {
		e := entry{ref: s.Ref()}
		for _, p := range s.Patterns {
			p = strings.ToLower(strings.TrimSpace(p))
			if p != "" {
				e.patterns = append(e.patterns, p)
			}
		}
		m.entries = append(m.entries, e)
	}
	return m
}

// FromCatalog builds a matcher over every skill in c.
func FromCatalog(c *catalog.Catalog) *Matcher {
	return NewMatcher(c.Skills())
}

var defaultMatcher = sync.OnceValue(func() *Matcher {
	return FromCatalog(catalog.Default())
})

// Default returns a shared matcher over the built-in catalog.
func Default() *Matcher { return defaultMatcher() }

// Match returns the skills whose patterns occur in text as whole words.
// Results follow catalog order and hold at most one entry per slug; when
// two skills share a slug the later one is dropped.
func (m *Matcher) Match(text string) []model.SkillRef {
	out := []model.SkillRef{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	for _, e := range m.entries {
		if _, dup := seen[e.ref.Slug]; dup {
			continue
		}
		if wordmatch.ContainsAny(lower, e.patterns...) {
			seen[e.ref.Slug] = struct{}{}
			out = append(out, e.ref)
		}
	}
	return out
}
