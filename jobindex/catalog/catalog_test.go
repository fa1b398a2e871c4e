package catalog

import (
	"errors"
	"testing"

	"github.com/eqhq/jobindex/jobindex/model"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Python", "python"},
		{"Node.js", "node-js"},
		{"AI / Data Science", "ai-data-science"},
		{"  Hello,  World!! ", "hello-world"},
		{"C++", "c"},
		{"CI/CD", "ci-cd"},
		{"---", ""},
		{"", ""},
		{"Café Bar", "caf-bar"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDomainSlugsMatchNames(t *testing.T) {
	for _, d := range Default().Domains() {
		if got := Slugify(d.Name); got != d.Slug {
			t.Errorf("domain %q: slug %q, Slugify gives %q", d.Name, d.Slug, got)
		}
	}
}

func TestSkillBySlugRoundTrip(t *testing.T) {
	c := Default()
	for _, s := range c.Skills() {
		got, ok := c.SkillBySlug(Slugify(s.Name))
		if !ok {
			t.Fatalf("skill %q not found by slug", s.Name)
		}
		want := model.SkillRef{Name: s.Name, Slug: Slugify(s.Name)}
		if got != want {
			t.Fatalf("round trip for %q: got %+v want %+v", s.Name, got, want)
		}
	}
}

func TestSkillBySlugNormalizes(t *testing.T) {
	got, ok := Default().SkillBySlug("  TypeScript ")
	if !ok || got.Name != "TypeScript" {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
	if _, ok := Default().SkillBySlug("no-such-skill"); ok {
		t.Fatal("expected unknown slug to miss")
	}
}

func TestNewRejectsSlugCollision(t *testing.T) {
	def := Definition{
		Skills: []Skill{
			{Name: "C++", Type: "programming", Patterns: []string{"c++"}},
			{Name: "C#", Type: "programming", Patterns: []string{"c#"}},
		},
	}
	_, err := New(def)
	if !errors.Is(err, ErrSlugCollision) {
		t.Fatalf("expected ErrSlugCollision, got %v", err)
	}
}

func TestNewRejectsDuplicateDomainSlug(t *testing.T) {
	def := Definition{Domains: []Domain{{Name: "AI", Slug: "ai"}, {Name: "A.I.", Slug: "ai"}}}
	if _, err := New(def); !errors.Is(err, ErrSlugCollision) {
		t.Fatalf("expected ErrSlugCollision, got %v", err)
	}
}

func TestSkillTypes(t *testing.T) {
	c := Default()
	st, ok := c.SkillTypeBySlug("programming-languages")
	if !ok {
		t.Fatal("programming-languages not found")
	}
	if st.ID != "programming" || st.UIName != "Programming Languages" {
		t.Fatalf("unexpected type: %+v", st)
	}
	if len(st.SkillNames) == 0 || st.SkillNames[0] != "Python" {
		t.Fatalf("expected Python first, got %v", st.SkillNames)
	}
	if _, ok := c.SkillTypeBySlug("data-ml-ai"); !ok {
		t.Fatal("data-ml-ai not found")
	}

	total := 0
	for _, st := range c.SkillTypes() {
		total += len(st.SkillNames)
	}
	if total != len(c.Skills()) {
		t.Fatalf("skill types cover %d skills, catalog has %d", total, len(c.Skills()))
	}
}

func TestSkillTypeFallsBackToID(t *testing.T) {
	c, err := New(Definition{Skills: []Skill{{Name: "Widget", Type: "gizmo"}}})
	if err != nil {
		t.Fatal(err)
	}
	st, ok := c.SkillTypeBySlug("gizmo")
	if !ok || st.UIName != "gizmo" {
		t.Fatalf("got %+v ok=%v", st, ok)
	}
}

func TestValidateFilters(t *testing.T) {
	c := Default()
	ok := model.FilterSet{
		Query:           "anything",
		Domain:          "Backend",
		EmploymentType:  EmploymentContract,
		ExperienceLevel: LevelSenior,
		SkillSlug:       "python",
		Location:        "Remote",
		CompanySlug:     "acme",
	}
	if err := c.ValidateFilters(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []model.FilterSet{
		{Domain: "backend"},
		{EmploymentType: "Full Time"},
		{ExperienceLevel: "Principal"},
		{SkillSlug: "cobol-2000"},
	}
	for _, f := range bad {
		var fe *FilterError
		if err := c.ValidateFilters(f); !errors.As(err, &fe) {
			t.Errorf("filters %+v: expected FilterError, got %v", f, err)
		}
	}
}

func TestResolveFilters(t *testing.T) {
	c := Default()
	f, err := c.ResolveFilters(model.FilterSet{Domain: "ai-data-science", SkillSlug: " Python "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Domain != "AI / Data Science" || f.SkillSlug != "python" {
		t.Fatalf("not resolved: %+v", f)
	}

	f, err = c.ResolveFilters(model.FilterSet{Domain: "Backend"})
	if err != nil || f.Domain != "Backend" {
		t.Fatalf("name should pass through: %+v %v", f, err)
	}

	var fe *FilterError
	if _, err := c.ResolveFilters(model.FilterSet{Domain: "astrology"}); !errors.As(err, &fe) || fe.Field != "domain" {
		t.Fatalf("expected domain FilterError, got %v", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()
	d := c.Domains()
	d[0].Name = "mutated"
	if c.Domains()[0].Name == "mutated" {
		t.Fatal("Domains exposed internal slice")
	}
}
