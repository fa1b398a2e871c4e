package planner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/storage/postgres"
	"github.com/eqhq/jobindex/jobindex/storage/sqlbuilder"
	"github.com/eqhq/jobindex/jobindex/storage/sqlite"
)

func TestListAppendsPagingAfterFilters(t *testing.T) {
	st := List(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, model.FilterSet{Domain: "Backend"}, 20, 40)
	if !strings.HasSuffix(st.SQL, "ORDER BY j.created_at DESC, j.id DESC LIMIT $2 OFFSET $3") {
		t.Fatalf("unexpected tail: %s", st.SQL)
	}
	if !reflect.DeepEqual(st.Args, []any{"Backend", 20, 40}) {
		t.Fatalf("args %v", st.Args)
	}
	if !strings.Contains(st.SQL, "j.skills::text") {
		t.Fatalf("expected JSON text cast: %s", st.SQL)
	}
}

func TestCountSharesPredicate(t *testing.T) {
	f := model.FilterSet{Query: "eng", SkillSlug: "go"}
	list := List(sqlbuilder.PlaceholderQuestion, sqlite.Dialect{}, f, 10, 0)
	count := Count(sqlbuilder.PlaceholderQuestion, sqlite.Dialect{}, f)
	if !reflect.DeepEqual(list.Args[:len(count.Args)], count.Args) {
		t.Fatalf("count args %v not a prefix of list args %v", count.Args, list.Args)
	}
	where := count.SQL[strings.Index(count.SQL, " WHERE "):]
	if !strings.Contains(list.SQL, where) {
		t.Fatalf("list does not share where clause %q", where)
	}
}

func TestCountIsPredicate(t *testing.T) {
	f := model.FilterSet{Domain: "Backend", Location: "berlin"}
	pred, args := Predicate(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, f, model.DimensionNone)
	st := Count(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, f)
	if !strings.HasSuffix(st.SQL, " WHERE "+pred) {
		t.Fatalf("count %q does not end with predicate %q", st.SQL, pred)
	}
	if !reflect.DeepEqual(st.Args, args) {
		t.Fatalf("args %v, want %v", st.Args, args)
	}

	st = Count(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, model.FilterSet{})
	if strings.Contains(st.SQL, "WHERE") || len(st.Args) != 0 {
		t.Fatalf("unfiltered count: %s %v", st.SQL, st.Args)
	}
}

func TestFacet(t *testing.T) {
	f := model.FilterSet{Domain: "Backend", EmploymentType: "Contract"}
	st, err := Facet(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, f, model.DimensionDomain)
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT j.domain, COUNT(*) AS cnt FROM jobs j LEFT JOIN companies c ON c.id = j.company_id" +
		" WHERE j.employment_type = $1 AND j.domain IS NOT NULL AND j.domain <> ''" +
		" GROUP BY j.domain ORDER BY cnt DESC, j.domain ASC"
	if st.SQL != want {
		t.Fatalf("got  %s\nwant %s", st.SQL, want)
	}
	if !reflect.DeepEqual(st.Args, []any{"Contract"}) {
		t.Fatalf("args %v", st.Args)
	}

	if _, err := Facet(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, f, model.Dimension("salary")); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestFeed(t *testing.T) {
	st := Feed(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, nil, 21)
	if strings.Contains(st.SQL, "WHERE") || !reflect.DeepEqual(st.Args, []any{21}) {
		t.Fatalf("first page: %s %v", st.SQL, st.Args)
	}
	cur := int64(30)
	st = Feed(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, &cur, 11)
	if !strings.Contains(st.SQL, "WHERE j.id < $1 ORDER BY j.id DESC LIMIT $2") {
		t.Fatalf("cursor page: %s", st.SQL)
	}
	if !reflect.DeepEqual(st.Args, []any{int64(30), 11}) {
		t.Fatalf("args %v", st.Args)
	}
}

func TestSkillCounts(t *testing.T) {
	st := SkillCounts(sqlbuilder.PlaceholderQuestion, sqlite.Dialect{}, model.FilterSet{Domain: "Backend"}, 5)
	if !strings.Contains(st.SQL, "JOIN json_each(j.skills) AS s WHERE j.domain = ?") {
		t.Fatalf("sql: %s", st.SQL)
	}
	if !reflect.DeepEqual(st.Args, []any{"Backend", 5}) {
		t.Fatalf("args %v", st.Args)
	}
	st = SkillCounts(sqlbuilder.PlaceholderDollar, postgres.Dialect{}, model.FilterSet{}, 0)
	if strings.Contains(st.SQL, "LIMIT") || len(st.Args) != 0 {
		t.Fatalf("unbounded: %s %v", st.SQL, st.Args)
	}
}
