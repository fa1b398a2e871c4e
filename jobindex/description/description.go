// Package description handles the structured job description stored with
// each posting: a JSON array of {heading, content[]} sections.
package description

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eqhq/jobindex/jobindex/model"
)

// Decode parses a stored description. Empty input and JSON null decode to
// no sections.
func Decode(raw []byte) ([]model.Section, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var sections []model.Section
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("decode description: %w", err)
	}
	return sections, nil
}

// Encode returns the stored form of sections, or nil when there are none.
func Encode(sections []model.Section) ([]byte, error) {
	if sections == nil {
		return nil, nil
	}
	return json.Marshal(sections)
}

// Text flattens sections into matchable text: one line per section made
// of the heading followed by its content lines, space separated.
func Text(sections []model.Section) string {
	lines := make([]string, 0, len(sections))
	for _, s := range sections {
		parts := make([]string, 0, len(s.Content)+1)
		parts = append(parts, s.Heading)
		parts = append(parts, s.Content...)
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

// TextFromJSON decodes and flattens a stored description. Malformed input
// yields empty text.
func TextFromJSON(raw []byte) string {
	sections, err := Decode(raw)
	if err != nil {
		return ""
	}
	return Text(sections)
}

// previewHeadings is checked in order against lower-cased section headings.
var previewHeadings = []string{
	"about you",
	"requirements",
	"qualifications",
	"what we're looking for",
	"what we’re looking for",
	"what you'll need",
	"what you’ll need",
	"who you are",
	"candidate",
	"skills",
	"experience",
	"profile",
	"what we expect",
	"what we want",
	"responsibilities",
	"about the role",
	"about the position",
	"role",
	"position",
}

const previewLines = 3

// Preview picks the section most likely to describe the candidate and
// joins its first three lines. Without a matching heading the section with
// the most lines wins. Returns "" when nothing usable exists.
func Preview(sections []model.Section) string {
	if len(sections) == 0 {
		return ""
	}
	picked := -1
	for _, kw := range previewHeadings {
		for i, s := range sections {
			if strings.Contains(strings.ToLower(s.Heading), kw) {
				picked = i
				break
			}
		}
		if picked >= 0 {
			break
		}
	}
	if picked < 0 {
		picked = 0
		for i, s := range sections {
			if len(s.Content) > len(sections[picked].Content) {
				picked = i
			}
		}
	}
	content := sections[picked].Content
	if len(content) > previewLines {
		content = content[:previewLines]
	}
	return strings.Join(strings.Fields(strings.Join(content, " ")), " ")
}
