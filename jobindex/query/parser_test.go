package query

import (
	"testing"

	"github.com/eqhq/jobindex/jobindex/model"
)

func TestParseFields(t *testing.T) {
	f, err := Parse(`domain:backend level:Senior type:Full-Time skill:go company:acme location:"New York"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.FilterSet{
		Domain:          "backend",
		ExperienceLevel: "Senior",
		EmploymentType:  "Full-Time",
		SkillSlug:       "go",
		CompanySlug:     "acme",
		Location:        "New York",
	}
	if f != want {
		t.Errorf("got %+v, want %+v", f, want)
	}
}

func TestParseBareText(t *testing.T) {
	f, err := Parse(`senior  "platform team" skill:rust engineer`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Query != "senior platform team engineer" {
		t.Errorf("expected joined free text, got %q", f.Query)
	}
	if f.SkillSlug != "rust" {
		t.Errorf("expected skill rust, got %q", f.SkillSlug)
	}
}

func TestParseAliases(t *testing.T) {
	cases := map[string]model.FilterSet{
		"employment_type:Contract": {EmploymentType: "Contract"},
		"experience:Junior":        {ExperienceLevel: "Junior"},
		"loc:Berlin":               {Location: "Berlin"},
		"Q:remote":                 {Query: "remote"},
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%s: got %+v, want %+v", in, got, want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != (model.FilterSet{}) {
		t.Errorf("expected empty filter set, got %+v", f)
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"colour:red",
		"skill:",
		"skill: :go",
		`skill:""`,
		":go",
		"level:Senior experience:Junior",
		"q:remote berlin",
		`"unterminated`,
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Errorf("%q: expected error", in)
		}
	}
}

func TestMerge(t *testing.T) {
	base := model.FilterSet{Domain: "Backend", Location: "Berlin"}
	got := Merge(base, model.FilterSet{Location: "Remote", SkillSlug: "go"})
	want := model.FilterSet{Domain: "Backend", Location: "Remote", SkillSlug: "go"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseEveryAliasSetsItsFilter(t *testing.T) {
	for alias, fd := range fields {
		got, err := Parse(alias + ":x")
		if err != nil {
			t.Errorf("%s: unexpected error: %v", alias, err)
			continue
		}
		var want model.FilterSet
		fd.set(&want, "x")
		if got != want {
			t.Errorf("%s: got %+v, want %+v", alias, got, want)
		}
		if _, ok := fields[fd.name]; !ok {
			t.Errorf("%s: filter name %q is not itself a field", alias, fd.name)
		}
		if _, err := Parse(alias + ":x " + fd.name + ":y"); err == nil {
			t.Errorf("%s and %s: expected duplicate error", alias, fd.name)
		}
	}
}
