// Package query parses compact filter strings such as
//
//	domain:backend level:senior skill:go "new york"
//
// into a filter set. field:value terms set one filter each; everything else
// is free text.
package query

import (
	"fmt"
	"strings"

	"github.com/eqhq/jobindex/jobindex/model"
)

type field struct {
	// name is the filter an alias sets, for duplicate detection.
	name string
	set  func(*model.FilterSet, string)
}

var (
	queryField      = field{"q", func(f *model.FilterSet, v string) { f.Query = v }}
	domainField     = field{"domain", func(f *model.FilterSet, v string) { f.Domain = v }}
	employmentField = field{"employment_type", func(f *model.FilterSet, v string) { f.EmploymentType = v }}
	levelField      = field{"experience_level", func(f *model.FilterSet, v string) { f.ExperienceLevel = v }}
	locationField   = field{"location", func(f *model.FilterSet, v string) { f.Location = v }}
	companyField    = field{"company", func(f *model.FilterSet, v string) { f.CompanySlug = v }}
	skillField      = field{"skill", func(f *model.FilterSet, v string) { f.SkillSlug = v }}
)

// fields maps accepted field names, aliases included, to filters.
var fields = map[string]field{
	"q":                queryField,
	"domain":           domainField,
	"type":             employmentField,
	"employment":       employmentField,
	"employment_type":  employmentField,
	"level":            levelField,
	"experience":       levelField,
	"experience_level": levelField,
	"location":         locationField,
	"loc":              locationField,
	"company":          companyField,
	"skill":            skillField,
}

// Parser builds a filter set from tokens
type Parser struct {
	tokens []Token
	pos    int
}

// Parse parses a filter string. Free-text words are joined with single
// spaces into Query. Setting the same filter twice is an error.
func Parse(input string) (model.FilterSet, error) {
	tokens, err := Lex(input)
	if err != nil {
		return model.FilterSet{}, err
	}
	p := &Parser{tokens: tokens}
	return p.parse()
}

func (p *Parser) parse() (model.FilterSet, error) {
	var (
		f    model.FilterSet
		text []string
		set  = map[string]bool{}
	)
	for p.peek().Kind != TokEOF {
		tok := p.advance()
		switch tok.Kind {
		case TokColon:
			return model.FilterSet{}, fmt.Errorf("unexpected ':' at %d", tok.Pos)
		case TokString:
			text = append(text, tok.Value)
			continue
		}

		if p.peek().Kind != TokColon {
			text = append(text, tok.Value)
			continue
		}
		p.advance() // ':'

		name := strings.ToLower(tok.Value)
		fd, ok := fields[name]
		if !ok {
			return model.FilterSet{}, fmt.Errorf("unknown field %q at %d", tok.Value, tok.Pos)
		}
		val := p.advance()
		if val.Kind != TokWord && val.Kind != TokString {
			return model.FilterSet{}, fmt.Errorf("missing value for %s at %d", name, val.Pos)
		}
		if strings.TrimSpace(val.Value) == "" {
			return model.FilterSet{}, fmt.Errorf("empty value for %s at %d", name, val.Pos)
		}
		if set[fd.name] {
			return model.FilterSet{}, fmt.Errorf("%s given more than once", fd.name)
		}
		set[fd.name] = true
		fd.set(&f, val.Value)
	}

	if len(text) > 0 {
		if set[queryField.name] {
			return model.FilterSet{}, fmt.Errorf("q given more than once")
		}
		f.Query = strings.Join(text, " ")
	}
	return f, nil
}

func (p *Parser) peek() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Kind: TokEOF}
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// Merge overlays the non-empty fields of extra onto base.
func Merge(base, extra model.FilterSet) model.FilterSet {
	pick := func(a, b string) string {
		if b != "" {
			return b
		}
		return a
	}
	return model.FilterSet{
		Query:           pick(base.Query, extra.Query),
		Domain:          pick(base.Domain, extra.Domain),
		EmploymentType:  pick(base.EmploymentType, extra.EmploymentType),
		ExperienceLevel: pick(base.ExperienceLevel, extra.ExperienceLevel),
		Location:        pick(base.Location, extra.Location),
		CompanySlug:     pick(base.CompanySlug, extra.CompanySlug),
		SkillSlug:       pick(base.SkillSlug, extra.SkillSlug),
	}
}
