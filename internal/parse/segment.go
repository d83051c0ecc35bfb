package parse

import "strings"

var spaceNormalizer = strings.NewReplacer(" ", " ", "\t", " ", "\r", " ")

// normalizeSpace collapses all whitespace runs, including newlines, to
// single spaces and trims the result.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(spaceNormalizer.Replace(s)), " ")
}

// mergeBulletRuns reassembles logical list items from raw lines. A
// line starting with a bullet marker opens a new item; every following
// non-bullet line is a wrapped continuation and is space-joined onto
// the open item. Lines before the first bullet are discarded.
func mergeBulletRuns(lines []string) []string {
	var items []string
	var open string
	haveOpen := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if bulletPattern.MatchString(line) {
			if haveOpen && open != "" {
				items = append(items, open)
			}
			open = strings.TrimSpace(bulletPattern.ReplaceAllString(line, ""))
			haveOpen = true
			continue
		}
		if haveOpen {
			open += " " + line
		}
	}
	if haveOpen && open != "" {
		items = append(items, open)
	}
	return items
}

// filterQuestions keeps items that end in "?" or contain a discussion
// prompt keyword. Guides phrase some prompts as imperatives, so a
// literal question mark alone is too strict.
func filterQuestions(items []string) []string {
	var out []string
	for _, item := range items {
		if strings.HasSuffix(item, "?") || questionPattern.MatchString(item) {
			out = append(out, item)
		}
	}
	return out
}
