package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/config"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/discover"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/fetch"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/guide"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/parse"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/pdftext"
)

// Result is the pipeline's terminal output.
type Result struct {
	Guide       *guide.Guide
	SeriesTitle string
	Date        time.Time
}

// Pipeline wires discovery, fetching, and parsing together.
type Pipeline struct {
	client     *fetch.Client
	discoverer *discover.Discoverer
	extractor  pdftext.Extractor
	log        zerolog.Logger

	// OverrideURL skips discovery and parses this URL directly.
	OverrideURL string
}

// New creates a Pipeline from the configuration.
func New(cfg config.Config, log zerolog.Logger) *Pipeline {
	client := fetch.New(cfg.Fetch.UserAgent, cfg.Fetch.Timeout.Std())
	return &Pipeline{
		client:     client,
		discoverer: discover.New(client, cfg, log),
		extractor:  pdftext.NewReader(),
		log:        log,
	}
}

// Run executes one update for the given day.
func (p *Pipeline) Run(ctx context.Context, today time.Time) (*Result, error) {
	res := &Result{SeriesTitle: "Current Series", Date: today}

	sourceURL := p.OverrideURL
	if sourceURL == "" {
		found, err := p.discoverer.Discover(ctx, today)
		if err != nil {
			return nil, err
		}
		sourceURL = found.Link.URL
		if found.SeriesTitle != "" {
			res.SeriesTitle = found.SeriesTitle
		}
		if found.Link.HasDate() {
			res.Date = found.Link.Date
		}
	} else {
		p.log.Info().Str("url", sourceURL).Msg("discovery skipped, using override URL")
	}

	g, err := p.parseSource(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	res.Guide = g

	p.log.Info().
		Str("url", g.URL).
		Int("questions", len(g.Questions)).
		Int("sections", len(g.Sections)).
		Msg("guide parsed")
	return res, nil
}

// parseSource fetches sourceURL once, sniffs it, and parses. An HTML
// page that yields zero questions escalates to the first PDF link it
// contains, when one exists.
func (p *Pipeline) parseSource(ctx context.Context, sourceURL string) (*guide.Guide, error) {
	body, contentType, err := p.client.Get(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	if isPDF(sourceURL, contentType) {
		return p.parsePDF(body, sourceURL)
	}

	g, err := parse.HTML(body, sourceURL)
	if err != nil {
		return nil, err
	}
	if len(g.Questions) > 0 {
		return g, nil
	}

	pdfURL := parse.FindPDFLink(body, sourceURL)
	if pdfURL == "" {
		// Zero questions with no PDF to escalate to is still a valid
		// outcome.
		return g, nil
	}

	p.log.Debug().Str("url", pdfURL).Msg("HTML gave no questions, escalating to embedded PDF")
	pdfBody, _, err := p.client.Get(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	return p.parsePDF(pdfBody, pdfURL)
}

func (p *Pipeline) parsePDF(body []byte, sourceURL string) (*guide.Guide, error) {
	text, err := p.extractor.ExtractText(body)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", sourceURL, err)
	}
	return parse.PDFText(text, sourceURL), nil
}

func isPDF(sourceURL, contentType string) bool {
	return strings.HasSuffix(strings.ToLower(sourceURL), ".pdf") ||
		strings.Contains(strings.ToLower(contentType), "application/pdf")
}
