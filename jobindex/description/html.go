package description

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/eqhq/jobindex/jobindex/model"
)

const introHeading = "Intro"

// ParseHTML turns job board HTML into sections. Entity-encoded markup is
// unescaped before parsing. h1-h3 elements and paragraphs containing a
// <strong> start a new section; list items and other paragraphs become
// content lines of the current one. Sections without content are dropped.
func ParseHTML(raw string) ([]model.Section, error) {
	doc, err := xhtml.Parse(strings.NewReader(html.UnescapeString(raw)))
	if err != nil {
		return nil, err
	}

	var sections []model.Section
	current := model.Section{Heading: introHeading}
	flush := func() {
		if len(current.Content) > 0 {
			sections = append(sections, current)
		}
	}

	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3":
				flush()
				current = model.Section{Heading: headingText(n)}
				return
			case "p":
				if hasDescendant(n, "strong") {
					flush()
					current = model.Section{Heading: headingText(n)}
				} else if t := nodeText(n); t != "" {
					current.Content = append(current.Content, t)
				}
				return
			case "ul", "ol":
				for li := n.FirstChild; li != nil; li = li.NextSibling {
					if li.Type == xhtml.ElementNode && li.Data == "li" {
						if t := nodeText(li); t != "" {
							current.Content = append(current.Content, t)
						}
					}
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flush()
	return sections, nil
}

func headingText(n *xhtml.Node) string {
	return strings.TrimSpace(strings.TrimSuffix(nodeText(n), ":"))
}

// nodeText returns the text content of n with whitespace runs collapsed.
func nodeText(n *xhtml.Node) string {
	var b strings.Builder
	var collect func(*xhtml.Node)
	collect = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func hasDescendant(n *xhtml.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xhtml.ElementNode && c.Data == tag {
			return true
		}
		if hasDescendant(c, tag) {
			return true
		}
	}
	return false
}
