// Package classify assigns a domain, experience level and employment type
// to a job title. Each axis is an ordered rule table; the first rule whose
// keywords hit the title decides the value.
package classify

import (
	"strings"

	"github.com/eqhq/jobindex/jobindex/catalog"
	"github.com/eqhq/jobindex/jobindex/internal/wordmatch"
	"github.com/eqhq/jobindex/jobindex/model"
)

type rule struct {
	value    string
	keywords []string
}

// Title classifies title on all three axes.
func Title(title string) model.Classification {
	return model.Classification{
		Domain:          Domain(title),
		ExperienceLevel: ExperienceLevel(title),
		EmploymentType:  EmploymentType(title),
	}
}

// Domain returns the functional area of a title. Keywords are matched as
// substrings of the lower-cased title padded with one space on each side,
// so a leading or trailing space in a keyword anchors it to a word edge.
func Domain(title string) string {
	t := padTitle(title)
	for _, r := range domainRules {
		for _, k := range r.keywords {
			if strings.Contains(t, k) {
				return r.value
			}
		}
	}
	return catalog.DomainOther
}

// ExperienceLevel returns the seniority of a title, checked from the most
// authoritative level down. Titles matching nothing are Mid-level.
func ExperienceLevel(title string) string {
	return firstWordRule(levelRules, title, catalog.LevelMid)
}

// EmploymentType returns Contract or Part-Time when the title says so and
// Full-Time otherwise. Intern titles are not special-cased.
func EmploymentType(title string) string {
	return firstWordRule(employmentRules, title, catalog.EmploymentFullTime)
}

func firstWordRule(rules []rule, title, fallback string) string {
	t := strings.ToLower(title)
	for _, r := range rules {
		if wordmatch.ContainsAny(t, r.keywords...) {
			return r.value
		}
	}
	return fallback
}

var titleSeparators = strings.NewReplacer(",", " ", "(", " ", ")", " ", "/", " ", "|", " ")

func padTitle(title string) string {
	return " " + titleSeparators.Replace(strings.ToLower(title)) + " "
}
