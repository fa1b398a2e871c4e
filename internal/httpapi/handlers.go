package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/eqhq/jobindex/jobindex"
	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/model"
)

// Engine is the part of *jobindex.Engine the handlers use.
type Engine interface {
	List(ctx context.Context, f model.FilterSet, page, limit int) (model.Page, error)
	Facets(ctx context.Context, f model.FilterSet) (model.FacetResult, error)
	HomeFeed(ctx context.Context, cursor *int64, limit int) (model.Feed, error)
	GetPosting(ctx context.Context, slug string) (model.Posting, error)
	Similar(ctx context.Context, p model.Posting, limit int) (jobindex.Similar, error)
	SkillCounts(ctx context.Context, f model.FilterSet, top int) ([]jobindex.SkillCount, error)
	Ping(ctx context.Context) error
	Catalog() *catalog.Catalog
}

type Handler struct {
	engine Engine
	log    zerolog.Logger
}

func NewHandler(engine Engine, log zerolog.Logger) *Handler {
	return &Handler{engine: engine, log: log}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return writeJSON(c, http.StatusOK, fiber.Map{"status": "ok"})
}

// Ready pings the store.
func (h *Handler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), time.Second)
	defer cancel()
	if err := h.engine.Ping(ctx); err != nil {
		return writeJSON(c, http.StatusServiceUnavailable, fiber.Map{"status": "not_ready", "details": err.Error()})
	}
	return writeJSON(c, http.StatusOK, fiber.Map{"status": "ready"})
}

// Catalog lists the values the enumerated filters accept.
func (h *Handler) Catalog(c *fiber.Ctx) error {
	cat := h.engine.Catalog()
	return writeJSON(c, http.StatusOK, fiber.Map{
		"domains":           cat.Domains(),
		"employment_types":  cat.EmploymentTypes(),
		"experience_levels": cat.ExperienceLevels(),
		"skill_types":       cat.SkillTypes(),
	})
}

func (h *Handler) ListJobs(c *fiber.Ctx) error {
	f, err := h.filters(c)
	if err != nil {
		return h.fail(c, err)
	}
	page, limit := parsePageLimit(c)
	result, err := h.engine.List(c.UserContext(), f, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return writeJSON(c, http.StatusOK, result)
}

func (h *Handler) Facets(c *fiber.Ctx) error {
	f, err := h.filters(c)
	if err != nil {
		return h.fail(c, err)
	}
	result, err := h.engine.Facets(c.UserContext(), f)
	if err != nil {
		return h.fail(c, err)
	}
	return writeJSON(c, http.StatusOK, result)
}

// GetJob returns one posting with related postings.
func (h *Handler) GetJob(c *fiber.Ctx) error {
	ctx := c.UserContext()
	p, err := h.engine.GetPosting(ctx, c.Params("slug"))
	if err != nil {
		return h.fail(c, err)
	}
	sim, err := h.engine.Similar(ctx, p, jobindex.DefaultSimilarLimit)
	if err != nil {
		return h.fail(c, err)
	}
	return writeJSON(c, http.StatusOK, fiber.Map{"job": p, "similar": sim})
}

func (h *Handler) Feed(c *fiber.Ctx) error {
	cursor, err := jobindex.ParseCursor(c.Query("cursor"))
	if err != nil {
		return h.fail(c, err)
	}
	_, limit := parsePageLimit(c)
	feed, err := h.engine.HomeFeed(c.UserContext(), cursor, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return writeJSON(c, http.StatusOK, feed)
}

func (h *Handler) SkillCounts(c *fiber.Ctx) error {
	f, err := h.filters(c)
	if err != nil {
		return h.fail(c, err)
	}
	top := 0
	if v := strings.TrimSpace(c.Query("top")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			top = n
		}
	}
	counts, err := h.engine.SkillCounts(c.UserContext(), f, top)
	if err != nil {
		return h.fail(c, err)
	}
	return writeJSON(c, http.StatusOK, counts)
}

// SkillJobs returns a skill with a page of postings that require it.
func (h *Handler) SkillJobs(c *fiber.Ctx) error {
	ref, ok := h.engine.Catalog().SkillBySlug(c.Params("slug"))
	if !ok {
		return h.fail(c, jobindex.NotFoundError("skill", c.Params("slug")))
	}
	f, err := h.filters(c)
	if err != nil {
		return h.fail(c, err)
	}
	f.SkillSlug = ref.Slug
	page, limit := parsePageLimit(c)
	result, err := h.engine.List(c.UserContext(), f, page, limit)
	if err != nil {
		return h.fail(c, err)
	}
	return writeJSON(c, http.StatusOK, fiber.Map{"skill": ref, "jobs": result.Postings, "meta": result.Meta})
}

func (h *Handler) SkillType(c *fiber.Ctx) error {
	t, ok := h.engine.Catalog().SkillTypeBySlug(c.Params("slug"))
	if !ok {
		return h.fail(c, jobindex.NotFoundError("skill type", c.Params("slug")))
	}
	return writeJSON(c, http.StatusOK, t)
}

// filters reads the filter set from the query string and checks it
// against the catalog.
func (h *Handler) filters(c *fiber.Ctx) (model.FilterSet, error) {
	f := model.FilterSet{
		Query:           strings.TrimSpace(c.Query("q")),
		Domain:          strings.TrimSpace(c.Query("domain")),
		EmploymentType:  strings.TrimSpace(c.Query("employment_type")),
		ExperienceLevel: strings.TrimSpace(c.Query("experience_level")),
		Location:        strings.TrimSpace(c.Query("location")),
		CompanySlug:     strings.TrimSpace(c.Query("company")),
		SkillSlug:       strings.TrimSpace(c.Query("skill")),
	}
	return h.engine.Catalog().ResolveFilters(f)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return writeError(c, status, "internal error", "")
	}
	var fe *catalog.FilterError
	if errors.As(err, &fe) {
		return writeError(c, status, fe.Error(), fe.Field)
	}
	var je *jobindex.Error
	if errors.As(err, &je) {
		return writeError(c, status, je.Message, je.Field)
	}
	return writeError(c, status, err.Error(), "")
}

// parsePageLimit reads page and limit; missing or malformed values fall
// back to the engine defaults, which also clamp the range.
func parsePageLimit(c *fiber.Ctx) (page, limit int) {
	page, limit = 1, jobindex.DefaultLimit
	if v := strings.TrimSpace(c.Query("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	return page, limit
}
