package textproc

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	blockSelectors = "p, div, li, br, h1, h2, h3, h4, h5, h6, tr, ul, ol, section, article"
	inlineSpace    = regexp.MustCompile(`[ \t\r\f\v]+`)
)

// PlainText flattens an HTML fragment to text with one block per line.
// Input without markup is returned trimmed.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}

	doc.Find("script, style, noscript, iframe, svg").Each(func(_ int, sel *goquery.Selection) {
		sel.Remove()
	})
	doc.Find(blockSelectors).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
		if line != "" {
			clean = append(clean, line)
		}
	}
	return strings.Join(clean, "\n")
}
