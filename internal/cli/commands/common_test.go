package commands

import (
	"testing"

	"github.com/eqhq/jobindex/jobindex/model"
)

func TestResolveFilters(t *testing.T) {
	f, err := resolveFilters(
		model.FilterSet{Location: "Berlin"},
		[]string{"domain:backend", "skill:Go", "location:Remote", "platform"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := model.FilterSet{
		Query:     "platform",
		Domain:    "Backend",
		Location:  "Berlin",
		SkillSlug: "go",
	}
	if f != want {
		t.Errorf("got %+v, want %+v", f, want)
	}
}

func TestResolveFiltersRejects(t *testing.T) {
	if _, err := resolveFilters(model.FilterSet{}, []string{"level:Wizard"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := resolveFilters(model.FilterSet{}, []string{`"open`}); err == nil {
		t.Error("expected error for unterminated string")
	}
}
