package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/model"
	"github.com/eqhq/jobindex/jobindex/storage/sqlite"
)

func newApp(t *testing.T) (*fiber.App, *jobindex.Engine) {
	t.Helper()
	ctx := context.Background()

	e, err := jobindex.Open(ctx, sqlite.New(filepath.Join(t.TempDir(), "api.db")), jobindex.DefaultOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })

	raws := []jobindex.RawPosting{
		{Company: model.Company{Name: "Acme"}, ExternalID: "1", Title: "Senior Backend Engineer", Location: "Berlin",
			ContentHTML: "<h2>Requirements</h2><ul><li>Golang</li><li>PostgreSQL</li></ul>"},
		{Company: model.Company{Name: "Acme"}, ExternalID: "2", Title: "Frontend Developer (Contract)", Location: "Remote",
			ContentHTML: "<h2>Skills</h2><ul><li>React and TypeScript</li></ul>"},
		{Company: model.Company{Name: "Beta"}, ExternalID: "3", Title: "Junior Backend Developer", Location: "Remote",
			ContentHTML: "<p>We write golang.</p>"},
	}
	for _, r := range raws {
		_, err := e.Ingest(ctx, r)
		require.NoError(t, err)
	}
	return New(e, zerolog.Nop()), e
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	app, _ := newApp(t)
	var m map[string]string
	assert.Equal(t, http.StatusOK, get(t, app, "/health", &m))
	assert.Equal(t, "ok", m["status"])
	assert.Equal(t, http.StatusOK, get(t, app, "/ready", &m))
	assert.Equal(t, "ready", m["status"])
}

func TestListJobs(t *testing.T) {
	app, _ := newApp(t)

	var page model.Page
	require.Equal(t, http.StatusOK, get(t, app, "/api/jobs?domain=backend&limit=1", &page))
	assert.EqualValues(t, 2, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNext)
	require.Len(t, page.Postings, 1)
	assert.Equal(t, "Backend", page.Postings[0].Domain)

	require.Equal(t, http.StatusOK, get(t, app, "/api/jobs?location=remote&skill=go", &page))
	require.Len(t, page.Postings, 1)
	assert.Equal(t, "Junior Backend Developer", page.Postings[0].Title)

	var e ErrorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, app, "/api/jobs?domain=astrology", &e))
	assert.Equal(t, "domain", e.Field)
	assert.Equal(t, http.StatusBadRequest, get(t, app, "/api/jobs?skill=cobol-2000", &e))
	assert.Equal(t, "skill_slug", e.Field)
}

func TestFacets(t *testing.T) {
	app, _ := newApp(t)

	var r model.FacetResult
	require.Equal(t, http.StatusOK, get(t, app, "/api/jobs/facets?domain=Backend", &r))
	assert.Equal(t, []model.ValueCount{{Value: "Backend", Count: 2}, {Value: "Frontend", Count: 1}}, r.Domain)
	assert.Equal(t, []model.ValueCount{{Value: "Full-Time", Count: 2}}, r.EmploymentType)
}

func TestGetJob(t *testing.T) {
	app, e := newApp(t)
	page, err := e.List(context.Background(), model.FilterSet{Query: "Senior"}, 1, 1)
	require.NoError(t, err)
	require.Len(t, page.Postings, 1)

	var body struct {
		Job     model.Posting    `json:"job"`
		Similar jobindex.Similar `json:"similar"`
	}
	require.Equal(t, http.StatusOK, get(t, app, "/api/jobs/"+page.Postings[0].Slug, &body))
	assert.Equal(t, "Senior Backend Engineer", body.Job.Title)
	require.Len(t, body.Similar.ByDomain, 1)
	assert.Equal(t, "Junior Backend Developer", body.Similar.ByDomain[0].Title)
	require.Len(t, body.Similar.ByCompany, 1)
	assert.Equal(t, "Acme", body.Similar.ByCompany[0].CompanyName)

	var er ErrorResponse
	assert.Equal(t, http.StatusNotFound, get(t, app, "/api/jobs/nope", &er))
}

func TestFeed(t *testing.T) {
	app, _ := newApp(t)

	var feed model.Feed
	require.Equal(t, http.StatusOK, get(t, app, "/api/feed?limit=2", &feed))
	require.Len(t, feed.Postings, 2)
	assert.True(t, feed.HasMore)
	require.NotNil(t, feed.NextCursor)

	var rest model.Feed
	require.Equal(t, http.StatusOK, get(t, app, "/api/feed?limit=2&cursor="+jobindex.FormatCursor(feed.NextCursor), &rest))
	assert.Len(t, rest.Postings, 1)
	assert.False(t, rest.HasMore)

	var er ErrorResponse
	assert.Equal(t, http.StatusBadRequest, get(t, app, "/api/feed?cursor=abc", &er))
	assert.Equal(t, "cursor", er.Field)
}

func TestSkillRoutes(t *testing.T) {
	app, _ := newApp(t)

	var counts []jobindex.SkillCount
	require.Equal(t, http.StatusOK, get(t, app, "/api/skills/counts?top=1", &counts))
	require.Len(t, counts, 1)
	assert.Equal(t, jobindex.SkillCount{Name: "Go", Slug: "go", Count: 2}, counts[0])

	var body struct {
		Skill model.SkillRef  `json:"skill"`
		Jobs  []model.Posting `json:"jobs"`
		Meta  model.PageMeta  `json:"meta"`
	}
	require.Equal(t, http.StatusOK, get(t, app, "/api/skills/go", &body))
	assert.Equal(t, "Go", body.Skill.Name)
	assert.EqualValues(t, 2, body.Meta.Total)

	var er ErrorResponse
	assert.Equal(t, http.StatusNotFound, get(t, app, "/api/skills/cobol-2000", &er))
	assert.Equal(t, http.StatusNotFound, get(t, app, "/api/skill-types/nope", &er))
}
