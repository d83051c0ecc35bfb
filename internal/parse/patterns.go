package parse

import "regexp"

// Heuristic tables. Site format drift is absorbed here, never in the
// control flow of the parsers.
var (
	// reflectPattern marks the start of the question block.
	reflectPattern = regexp.MustCompile(`(?i)reflect\s*\+\s*discuss`)

	// bulletPattern matches a line that starts a new list item: hyphen,
	// en dash, em dash, or bullet glyph.
	bulletPattern = regexp.MustCompile(`^\s*[-–—•]\s+`)

	// questionPattern keeps prompts that are rhetorical statements
	// rather than literal questions ("Read Colossians 3 and discuss").
	questionPattern = regexp.MustCompile(`(?i)\b(read|what|how|why|where|when)\b`)

	// midlineBulletPattern finds bullet markers stranded mid-line by
	// PDF text extraction, e.g. "...? – Next item".
	midlineBulletPattern = regexp.MustCompile(`([?:;.!])\s+[-–—•]\s+`)

	// hyphenBreakPattern matches a word split across a line break.
	hyphenBreakPattern = regexp.MustCompile(`(\p{L})-\n(\p{L})`)

	// softWrapPattern matches a mid-sentence PDF reflow break: a line
	// ending in a lowercase letter, digit, or closing bracket followed
	// by a line starting lowercase.
	softWrapPattern = regexp.MustCompile(`([a-z0-9)\]])\n([a-z])`)
)

// sectionNames are the recognized section headings, in canonical form.
// Titles in parsed output are normalized to these spellings; at most
// one section is emitted per name.
var sectionNames = []string{
	"Memorization Challenge",
	"Pray",
	"Next Steps",
}

// sectionPatterns matches each canonical name at a word boundary,
// case-insensitively, index-aligned with sectionNames.
var sectionPatterns = func() []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(sectionNames))
	for i, name := range sectionNames {
		pats[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	}
	return pats
}()

// anySectionLinePattern matches a line that is exactly a recognized
// section name (optionally with a trailing colon); it bounds working
// blocks in PDF text. Requiring the full line keeps body prose like
// "Pray for one another" from reading as a heading.
var anySectionLinePattern = regexp.MustCompile(
	`(?im)^\s*(memorization\s+challenge|pray|next\s+steps)\s*:?\s*$`)
