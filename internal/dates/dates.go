package dates

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Extraction patterns are kept as package-level tables so site format
// drift can be absorbed without touching the extraction flow.
var (
	// monthNamePattern matches "September 28", "Sept 28", "Sep. 28".
	monthNamePattern = regexp.MustCompile(
		`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|` +
			`Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)` +
			`\.?\s+(\d{1,2})\b`)

	// numericPattern matches "9/28", "09/28", "9-28".
	numericPattern = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})\b`)
)

var monthsByName = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// makeDate builds a date and rejects combinations that do not exist on
// the calendar (time.Date would silently normalize "February 30").
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// ExtractDates returns every distinct date found in text, in ascending
// order. Both month-name and numeric forms are recognized; yearHint
// supplies the year the pages omit. Malformed combinations are dropped
// silently.
func ExtractDates(text string, yearHint int) []time.Time {
	seen := make(map[time.Time]bool)

	for _, m := range monthNamePattern.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSuffix(strings.ToLower(m[1]), ".")
		month, ok := monthsByName[name]
		if !ok {
			continue
		}
		day, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if d, ok := makeDate(yearHint, month, day); ok {
			seen[d] = true
		}
	}

	for _, m := range numericPattern.FindAllStringSubmatch(text, -1) {
		month, err := strconv.Atoi(m[1])
		if err != nil || month < 1 || month > 12 {
			continue
		}
		day, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		if d, ok := makeDate(yearHint, time.Month(month), day); ok {
			seen[d] = true
		}
	}

	out := make([]time.Time, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Resolve picks the best candidate relative to today: the latest date
// that is not after today, or, when every candidate is in the future,
// the latest date found. Guides are normally posted on or before their
// effective date, but an early-posted guide should still win over
// nothing. Returns the zero time for an empty candidate set.
//
// Known risk: on a page ordered oldest-first that carries only future
// dates, this selects the furthest-out guide rather than the nearest;
// that ambiguity is inherited behavior, kept deliberately.
func Resolve(candidates []time.Time, today time.Time) time.Time {
	if len(candidates) == 0 {
		return time.Time{}
	}
	sorted := append([]time.Time(nil), candidates...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best := time.Time{}
	for _, d := range sorted {
		if !d.After(today) {
			best = d
		}
	}
	if best.IsZero() {
		return sorted[len(sorted)-1]
	}
	return best
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
