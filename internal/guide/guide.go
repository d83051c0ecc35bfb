package guide

import (
	"strings"
	"time"
)

// Section is a titled block of guide text, e.g. "Memorization Challenge".
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Guide is the normalized content of one discussion guide document.
// Questions keep their document order and never contain empty strings.
type Guide struct {
	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Questions []string  `json:"questions"`
	Sections  []Section `json:"sections"`
}

// NewGuide creates a Guide for sourceURL, dropping empty questions and
// empty-bodied sections.
func NewGuide(sourceURL string, questions []string, sections []Section) *Guide {
	g := &Guide{
		URL:       sourceURL,
		Questions: make([]string, 0, len(questions)),
		Sections:  make([]Section, 0, len(sections)),
	}
	for _, q := range questions {
		if strings.TrimSpace(q) != "" {
			g.Questions = append(g.Questions, q)
		}
	}
	for _, s := range sections {
		if strings.TrimSpace(s.Body) != "" {
			g.Sections = append(g.Sections, s)
		}
	}
	return g
}

// Link is a candidate guide location found during discovery.
type Link struct {
	URL     string    `json:"url"`
	Date    time.Time `json:"date,omitzero"` // zero when no date was resolved
	Context string    `json:"context,omitempty"`
}

// HasDate reports whether a date was resolved for this link.
func (l Link) HasDate() bool {
	return !l.Date.IsZero()
}
