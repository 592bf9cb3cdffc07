// SPDX-License-Identifier: AGPL-3.0-only
package helpers

import (
	"strings"
	"time"

	"golang.org/x/net/html"
)

// StripHTMLToText flattens any markup in a post body down to plain text.
// Bodies are usually plain already, but pasted content occasionally
// carries tags.
func StripHTMLToText(input string) string {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return ""
	}

	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(text)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}

// Excerpt produces the truncated card body: markup stripped, cut at max
// runes with an ellipsis.
func Excerpt(body string, max int) string {
	text := StripHTMLToText(body)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04")
}

// Initial returns the single-letter avatar placeholder for a username.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}
