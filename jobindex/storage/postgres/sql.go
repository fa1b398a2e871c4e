package postgres

import "github.com/eqhq/jobindex/jobindex/storage"

var SQLTemplates = storage.SQL{
	UpsertCompany: `INSERT INTO companies(slug, name, website, logo_url, description, platform, namespace, created_at, updated_at)
	        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
	        ON CONFLICT(slug) DO UPDATE
	          SET name=EXCLUDED.name,
	              website=EXCLUDED.website,
	              logo_url=EXCLUDED.logo_url,
	              description=EXCLUDED.description,
	              platform=EXCLUDED.platform,
	              namespace=EXCLUDED.namespace,
	              updated_at=EXCLUDED.updated_at
	        RETURNING id`,
	UpsertPosting: `INSERT INTO jobs(slug, platform, external_id, company_id, title, url, location, domain,
	                         employment_type, experience_level, skills, description, created_at, updated_at)
	        VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::jsonb, $12::jsonb, $13, $14)
	        ON CONFLICT(slug) DO UPDATE
	          SET platform=EXCLUDED.platform,
	              external_id=EXCLUDED.external_id,
	              company_id=EXCLUDED.company_id,
	              title=EXCLUDED.title,
	              url=EXCLUDED.url,
	              location=EXCLUDED.location,
	              domain=EXCLUDED.domain,
	              employment_type=EXCLUDED.employment_type,
	              experience_level=EXCLUDED.experience_level,
	              skills=EXCLUDED.skills,
	              description=EXCLUDED.description,
	              updated_at=EXCLUDED.updated_at
	        RETURNING id`,
	UpdateSkills: "UPDATE jobs SET skills = $1::jsonb, updated_at = $2 WHERE id = $3",
	SelectUnsetSkills: `SELECT id, description::text FROM jobs
	        WHERE skills IS NULL AND description IS NOT NULL AND id > $1
	        ORDER BY id ASC LIMIT $2`,
	UpsertSkill: `INSERT INTO skills(name, slug, type_id, type_name, type_slug) VALUES($1, $2, $3, $4, $5)
	        ON CONFLICT(slug) DO UPDATE
	          SET name=EXCLUDED.name,
	              type_id=EXCLUDED.type_id,
	              type_name=EXCLUDED.type_name,
	              type_slug=EXCLUDED.type_slug`,
}

// Dialect renders PostgreSQL fragments over JSONB skill arrays.
type Dialect struct{}

func (Dialect) ContainsCI(expr, ph string) string {
	return expr + " ILIKE " + ph + ` ESCAPE '\'`
}

// HasSkill uses containment so the GIN index on jobs.skills applies.
func (Dialect) HasSkill(expr, ph string) string {
	return expr + " @> jsonb_build_array(jsonb_build_object('slug', " + ph + "::text))"
}

func (Dialect) JSONText(expr string) string { return expr + "::text" }
func (Dialect) JSONValue(ph string) string  { return ph + "::jsonb" }

func (Dialect) SkillElements(expr string) (join, slug, name string) {
	return "CROSS JOIN LATERAL jsonb_array_elements(" + expr + ") AS s(elem)",
		"s.elem->>'slug'",
		"s.elem->>'name'"
}
