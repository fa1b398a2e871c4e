package skills

import (
	"reflect"
	"testing"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/model"
)

func testMatcher() *Matcher {
	return NewMatcher([]catalog.Skill{
		{Name: "TypeScript", Type: "programming", Patterns: []string{"typescript", "ts"}},
		{Name: "JavaScript", Type: "programming", Patterns: []string{"javascript", " js "}},
		{Name: "Go", Type: "programming", Patterns: []string{"golang"}},
		{Name: "C++", Type: "programming", Patterns: []string{"c++", "cpp"}},
		{Name: "Blank", Type: "programming", Patterns: []string{"", "   "}},
	})
}

func names(refs []model.SkillRef) []string {
	out := []string{}
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func TestMatch(t *testing.T) {
	m := testMatcher()
	cases := []struct {
		text string
		want []string
	}{
		{"We use TypeScript daily", []string{"TypeScript"}},
		{"assets and budgets", []string{}},
		{"TS and JS", []string{"TypeScript", "JavaScript"}},
		{"js first, then ts", []string{"TypeScript", "JavaScript"}},
		{"Modern C++ (17) and Golang", []string{"Go", "C++"}},
		{"", []string{}},
		{"   ", []string{}},
	}
	for _, tc := range cases {
		if got := names(m.Match(tc.text)); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Match(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestMatchSlugs(t *testing.T) {
	got := testMatcher().Match("typescript")
	want := []model.SkillRef{{Name: "TypeScript", Slug: "typescript"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestMatchIdempotentUnderRepetition(t *testing.T) {
	m := FromCatalog(catalog.Default())
	text := "Backend role: Python, PostgreSQL, Docker and Kubernetes on AWS. Git required."
	once := m.Match(text)
	twice := m.Match(text + "\n" + text)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("repetition changed result:\n%v\n%v", once, twice)
	}
	if !reflect.DeepEqual(once, m.Match(text)) {
		t.Fatal("Match is not deterministic")
	}
}

func TestMatchDefaultCatalog(t *testing.T) {
	got := FromCatalog(catalog.Default()).Match("Python, PostgreSQL and Kubernetes")
	slugs := map[string]bool{}
	for _, r := range got {
		if slugs[r.Slug] {
			t.Fatalf("duplicate slug %q in %v", r.Slug, got)
		}
		slugs[r.Slug] = true
	}
	for _, want := range []string{"python", "postgresql", "kubernetes"} {
		if !slugs[want] {
			t.Errorf("expected %q in %v", want, got)
		}
	}
}

// Skills that slugify alike collapse into the first one that matches. The
// built-in catalog rejects such pairs; this pins what the matcher does if
// handed one anyway.
func TestMatchSlugCollisionKeepsFirst(t *testing.T) {
	m := NewMatcher([]catalog.Skill{
		{Name: "C++", Patterns: []string{"c++"}},
		{Name: "C#", Patterns: []string{"c#"}},
	})
	if got := m.Match("c++ and c#"); !reflect.DeepEqual(names(got), []string{"C++"}) {
		t.Fatalf("got %v", got)
	}
	if got := m.Match("only c#"); !reflect.DeepEqual(got, []model.SkillRef{{Name: "C#", Slug: "c"}}) {
		t.Fatalf("got %v", got)
	}
}
