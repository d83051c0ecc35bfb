package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/pipeline"
)

// OutputFormat specifies the summary output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *pipeline.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the guide record as JSON
func writeJSON(w io.Writer, result *pipeline.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Guide)
}

// writeText outputs a human-readable run summary
func writeText(w io.Writer, result *pipeline.Result) error {
	g := result.Guide
	fmt.Fprintf(w, "%s — %s\n", result.SeriesTitle, result.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintf(w, "Source: %s\n", g.URL)

	if len(g.Questions) == 0 {
		fmt.Fprintln(w, "No questions found.")
	} else {
		fmt.Fprintf(w, "\nQuestions (%d):\n", len(g.Questions))
		for _, q := range g.Questions {
			fmt.Fprintf(w, "  - %s\n", q)
		}
	}

	for _, s := range g.Sections {
		fmt.Fprintf(w, "\n%s:\n  %s\n", s.Title, s.Body)
	}
	return nil
}
