package parse

import (
	"strings"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/guide"
)

// PDFText parses raw PDF-extracted text into questions and sections.
// Extraction destroys all document structure, so a normalization pass
// rebuilds usable lines before the shared segmentation runs.
func PDFText(raw, sourceURL string) *guide.Guide {
	text := normalizePDFText(raw)
	lines := splitLines(text)

	title := ""
	if len(lines) > 0 {
		title = lines[0]
	}

	// Working block: everything after the Reflect + Discuss marker up
	// to the first recognized section heading.
	start := 0
	for i, ln := range lines {
		if reflectPattern.MatchString(ln) {
			start = i + 1
			break
		}
	}
	var block []string
	for _, ln := range lines[start:] {
		if anySectionLinePattern.MatchString(ln) {
			break
		}
		block = append(block, ln)
	}

	questions := filterQuestions(mergeBulletRuns(block))

	var sections []guide.Section
	for i, name := range sectionNames {
		if body := sectionBody(text, i); body != "" {
			sections = append(sections, guide.Section{Title: name, Body: body})
		}
	}

	g := guide.NewGuide(sourceURL, questions, sections)
	g.Title = title
	return g
}

// normalizePDFText repairs the three artifacts PDF extraction leaves
// behind: words hyphen-split across lines, sentences soft-wrapped
// mid-clause, and bullet markers stranded mid-line.
func normalizePDFText(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, " ", " ")
	text = hyphenBreakPattern.ReplaceAllString(text, "$1$2")
	text = softWrapPattern.ReplaceAllString(text, "$1 $2")
	text = midlineBulletPattern.ReplaceAllString(text, "$1\n– ")
	// Canonicalize every bullet glyph at line start.
	out := splitLines(text)
	for i, ln := range out {
		if bulletPattern.MatchString(ln) {
			out[i] = "– " + strings.TrimSpace(bulletPattern.ReplaceAllString(ln, ""))
		}
	}
	return strings.Join(out, "\n")
}

// sectionBody captures the text following section name i up to the
// next recognized section heading or end of text.
func sectionBody(text string, i int) string {
	loc := sectionPatterns[i].FindStringIndex(text)
	if loc == nil {
		return ""
	}
	rest := text[loc[1]:]
	rest = strings.TrimLeft(rest, ": \t\n")
	if next := anySectionLinePattern.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	return normalizeSpace(rest)
}

// splitLines trims each line and drops empties, preserving order.
func splitLines(text string) []string {
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(ln); t != "" {
			out = append(out, t)
		}
	}
	return out
}
