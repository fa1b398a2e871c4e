package sqlite

import "github.com/eqhq/jobindex/jobindex/storage"

var SQLTemplates = storage.SQL{
	UpsertCompany: `INSERT INTO companies(slug, name, website, logo_url, description, platform, namespace, created_at, updated_at)
		VALUES(?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9)
		ON CONFLICT(slug) DO UPDATE SET name=excluded.name, website=excluded.website, logo_url=excluded.logo_url,
			description=excluded.description, platform=excluded.platform, namespace=excluded.namespace,
			updated_at=excluded.updated_at
		RETURNING id`,
	UpsertPosting: `INSERT INTO jobs(slug, platform, external_id, company_id, title, url, location, domain,
			employment_type, experience_level, skills, description, created_at, updated_at)
		VALUES(?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14)
		ON CONFLICT(slug) DO UPDATE SET platform=excluded.platform, external_id=excluded.external_id,
			company_id=excluded.company_id, title=excluded.title, url=excluded.url, location=excluded.location,
			domain=excluded.domain, employment_type=excluded.employment_type,
			experience_level=excluded.experience_level, skills=excluded.skills,
			description=excluded.description, updated_at=excluded.updated_at
		RETURNING id`,
	UpdateSkills: "UPDATE jobs SET skills = ?1, updated_at = ?2 WHERE id = ?3",
	SelectUnsetSkills: `SELECT id, description FROM jobs
		WHERE skills IS NULL AND description IS NOT NULL AND id > ?1
		ORDER BY id ASC LIMIT ?2`,
	UpsertSkill: `INSERT INTO skills(name, slug, type_id, type_name, type_slug) VALUES(?1, ?2, ?3, ?4, ?5)
		ON CONFLICT(slug) DO UPDATE SET name=excluded.name, type_id=excluded.type_id,
			type_name=excluded.type_name, type_slug=excluded.type_slug`,
}

// Dialect renders SQLite fragments. LIKE is case-insensitive for ASCII by
// default; skill arrays are read with the JSON1 functions.
type Dialect struct{}

func (Dialect) ContainsCI(expr, ph string) string {
	return expr + " LIKE " + ph + ` ESCAPE '\'`
}

func (Dialect) HasSkill(expr, ph string) string {
	return "EXISTS (SELECT 1 FROM json_each(" + expr + ") AS s WHERE json_extract(s.value, '$.slug') = " + ph + ")"
}

func (Dialect) JSONText(expr string) string { return expr }
func (Dialect) JSONValue(ph string) string  { return ph }

func (Dialect) SkillElements(expr string) (join, slug, name string) {
	return "JOIN json_each(" + expr + ") AS s",
		"json_extract(s.value, '$.slug')",
		"json_extract(s.value, '$.name')"
}
