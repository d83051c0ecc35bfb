package discover

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// contextSeparator joins the collected text fragments; it is
// distinctive enough not to occur in page copy.
const contextSeparator = "  •  "

// defaultAncestorDepth bounds how far up the tree context collection
// climbs.
const defaultAncestorDepth = 3

// CollectContext gathers the text most likely to hold the date label
// for an anchor: the anchor itself, its parent, up to three preceding
// siblings, and up to maxAncestors enclosing containers. The date is
// not reliably in any one of these positions (same card, line above,
// or wrapping element), so the collector casts a bounded net.
// Duplicate fragments are dropped, order preserved.
func CollectContext(anchor *goquery.Selection, maxAncestors int) string {
	if len(anchor.Nodes) == 0 {
		return ""
	}
	node := anchor.Nodes[0]

	var texts []string
	texts = append(texts, nodeText(node))
	if node.Parent != nil {
		texts = append(texts, nodeText(node.Parent))
	}

	steps := 0
	for prev := node.PrevSibling; prev != nil && steps < 3; prev = prev.PrevSibling {
		if t := nodeText(prev); t != "" {
			texts = append(texts, t)
		}
		steps++
	}

	depth := 0
	for anc := node.Parent; anc != nil && depth < maxAncestors; anc = anc.Parent {
		texts = append(texts, nodeText(anc))
		depth++
	}

	seen := make(map[string]bool)
	var uniq []string
	for _, t := range texts {
		if t != "" && !seen[t] {
			uniq = append(uniq, t)
			seen[t] = true
		}
	}
	return strings.Join(uniq, contextSeparator)
}

// nodeText returns the whitespace-collapsed text content of a node,
// including text nodes themselves.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		switch cur.Type {
		case html.TextNode:
			b.WriteString(cur.Data)
			b.WriteByte(' ')
		case html.ElementNode:
			if cur.Data == "script" || cur.Data == "style" {
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
