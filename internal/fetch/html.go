package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noise is removed before text is read.
const noise = "head, nav, footer, script, style, noscript, template, svg, form, button, .sidebar, .cookie-banner"

// blockTags end a line of text.
//
//nolint:gochecknoglobals // read-only table
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true, "header": true,
	"li": true, "ul": true, "ol": true, "tr": true, "table": true, "dt": true, "dd": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
}

// ResumeSelectors returns containers that usually hold the résumé body,
// most specific first.
func ResumeSelectors() []string {
	return []string{
		".resume",
		"#resume",
		"[itemtype*='Person']",
		"main",
		"article",
		"#content",
		".content",
	}
}

// HTMLText returns the visible text of a résumé page with one line per
// block element, so headings stay on lines of their own. The first matching
// selector scopes the text; body is used when none match.
func HTMLText(page string, selectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find(noise).Remove()

	if len(selectors) == 0 {
		selectors = ResumeSelectors()
	}
	root := doc.Find("body")
	for _, selector := range selectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			root = sel.First()
			break
		}
	}

	var b strings.Builder
	for _, n := range root.Nodes {
		writeText(&b, n)
	}
	return tidyLines(b.String()), nil
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			b.WriteByte('\n')
			return
		}
	}

	block := n.Type == html.ElementNode && blockTags[n.Data]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

// tidyLines collapses runs of spaces inside each line and drops empty lines.
func tidyLines(text string) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
