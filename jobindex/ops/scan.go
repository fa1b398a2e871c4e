package ops

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eqhq/jobindex/jobindex/description"
	"github.com/eqhq/jobindex/jobindex/model"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanPosting reads the columns of planner.PostingColumns. A description
// that fails to decode is returned as empty rather than failing the row.
func scanPosting(r rowScanner) (model.Posting, error) {
	var (
		p                    model.Posting
		skills, desc         sql.NullString
		createdAt, updatedAt int64
	)
	err := r.Scan(
		&p.ID, &p.Slug, &p.Platform, &p.ExternalID, &p.URL, &p.Title,
		&p.CompanyID, &p.CompanySlug, &p.CompanyName,
		&p.Location, &p.Domain, &p.EmploymentType, &p.ExperienceLevel,
		&skills, &desc, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Posting{}, err
	}
	if skills.Valid {
		p.Skills, err = decodeSkills(skills.String)
		if err != nil {
			p.Skills = []model.SkillRef{}
		}
	}
	if desc.Valid {
		p.Description, _ = description.Decode([]byte(desc.String))
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return p, nil
}

func scanPostings(rows *sql.Rows) ([]model.Posting, error) {
	defer rows.Close()
	out := []model.Posting{}
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func decodeSkills(s string) ([]model.SkillRef, error) {
	out := []model.SkillRef{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.SkillRef{}
	}
	return out, nil
}

// encodeSkills returns the stored form of skills: NULL for nil, a JSON
// array otherwise.
func encodeSkills(skills []model.SkillRef) (any, error) {
	if skills == nil {
		return nil, nil
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
