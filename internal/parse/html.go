package parse

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/guide"
)

// headingSelector matches nodes that can mark a guide block: real
// headings plus bold runs, which the site sometimes uses instead.
const headingSelector = "h1,h2,h3,h4,h5,h6,strong,b"

// HTML parses a rendered guide page into questions and sections.
func HTML(body []byte, sourceURL string) (*guide.Guide, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	headings := doc.Find(headingSelector)

	var reflectHead *goquery.Selection
	headings.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if reflectPattern.MatchString(normalizeSpace(sel.Text())) {
			reflectHead = sel
			return false
		}
		return true
	})

	var lines []string
	if reflectHead != nil {
		lines = collectUntilNextHeading(reflectHead)
	} else {
		// Degraded mode: no recognizable heading, work over the whole
		// page body.
		lines = nodeLines(doc.Find("body").Nodes...)
	}

	questions := filterQuestions(mergeBulletRuns(lines))

	var sections []guide.Section
	for i, name := range sectionNames {
		pat := sectionPatterns[i]
		var head *goquery.Selection
		headings.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if pat.MatchString(normalizeSpace(sel.Text())) {
				head = sel
				return false
			}
			return true
		})
		if head == nil {
			continue
		}
		body := normalizeSpace(strings.Join(collectUntilNextHeading(head), " "))
		if body != "" {
			sections = append(sections, guide.Section{Title: name, Body: body})
		}
	}

	return guide.NewGuide(sourceURL, questions, sections), nil
}

// FindPDFLink returns the first anchor href on the page ending in
// ".pdf", resolved against baseURL, or "" when none exists.
func FindPDFLink(body []byte, baseURL string) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.HasSuffix(strings.ToLower(href), ".pdf") {
			return true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		found = base.ResolveReference(ref).String()
		return false
	})
	return found
}

// collectUntilNextHeading gathers the text lines of every element
// sibling after start, stopping at the next h1-h6 element.
func collectUntilNextHeading(start *goquery.Selection) []string {
	var lines []string
	for _, n := range start.Nodes {
		for sib := nextElement(n); sib != nil && !isHeadingElement(sib); sib = nextElement(sib) {
			lines = append(lines, nodeLines(sib)...)
		}
		break
	}
	return lines
}

// nodeLines returns the trimmed text content of the given nodes, one
// entry per text node, empties dropped. This keeps list items and
// paragraphs on separate lines for bullet-run merging.
func nodeLines(nodes ...*html.Node) []string {
	var lines []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := normalizeSpace(n.Data); t != "" {
				lines = append(lines, t)
			}
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return lines
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func isHeadingElement(n *html.Node) bool {
	if n.Type != html.ElementNode || len(n.Data) != 2 {
		return false
	}
	return n.Data[0] == 'h' && n.Data[1] >= '1' && n.Data[1] <= '6'
}
