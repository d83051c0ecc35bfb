package discover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/config"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/dates"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/fetch"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/guide"
)

// ErrNoGuideFound is returned when every discovery stage exhausts
// without producing a link.
var ErrNoGuideFound = errors.New("no discussion guide link found across all stages")

// guideLinkText identifies guide anchors on every page shape.
const guideLinkText = "discussion guide"

// Result is a discovered guide location plus any series metadata the
// winning stage happened to see.
type Result struct {
	Link        guide.Link
	SeriesTitle string
	Stage       string
}

// Discoverer runs the stage chain against one site configuration.
type Discoverer struct {
	client      *fetch.Client
	messagesURL string
	learnURL    string
	log         zerolog.Logger
}

// New creates a Discoverer.
func New(client *fetch.Client, cfg config.Config, log zerolog.Logger) *Discoverer {
	return &Discoverer{
		client:      client,
		messagesURL: cfg.Site.MessagesURL,
		learnURL:    cfg.Site.LearnURL,
		log:         log,
	}
}

// Discover returns the guide link for today. Stages run in order and
// fail soft; only full exhaustion is an error.
func (d *Discoverer) Discover(ctx context.Context, today time.Time) (Result, error) {
	stages := []struct {
		name string
		run  func(context.Context, time.Time) (Result, error)
	}{
		{"messages-index", d.fromMessagesIndex},
		{"message-detail", d.fromMessageDetail},
		{"series-resources", d.fromSeriesResources},
	}

	for _, stage := range stages {
		res, err := stage.run(ctx, today)
		if err != nil {
			d.log.Debug().Str("stage", stage.name).Err(err).Msg("discovery stage failed, advancing")
			continue
		}
		res.Stage = stage.name
		d.log.Info().Str("stage", stage.name).Str("url", res.Link.URL).Msg("guide link found")
		return res, nil
	}
	return Result{}, ErrNoGuideFound
}

// fromMessagesIndex scans the messages listing for guide anchors whose
// surrounding context carries a usable date, then picks the anchor
// with the best resolved date.
func (d *Discoverer) fromMessagesIndex(ctx context.Context, today time.Time) (Result, error) {
	doc, err := d.fetchDoc(ctx, d.messagesURL)
	if err != nil {
		return Result{}, err
	}

	links := d.collectGuideLinks(doc, d.messagesURL, today)
	best, ok := pickLink(links, today, false)
	if !ok {
		return Result{}, errors.New("no dated discussion guide anchors on messages page")
	}
	return Result{Link: best}, nil
}

// fromMessageDetail finds the message detail page whose listing text
// mentions today's date, then takes the first guide anchor on it.
func (d *Discoverer) fromMessageDetail(ctx context.Context, today time.Time) (Result, error) {
	doc, err := d.fetchDoc(ctx, d.messagesURL)
	if err != nil {
		return Result{}, err
	}

	monthName := today.Month().String()
	dayText := fmt.Sprintf("%d", today.Day())
	numeric := fmt.Sprintf("%d/%d", int(today.Month()), today.Day())

	var pageURL string
	doc.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "/message/") {
			return true
		}
		text := CollectContext(sel, 1)
		if (strings.Contains(text, monthName) && strings.Contains(text, dayText)) ||
			strings.Contains(text, numeric) {
			pageURL = resolveURL(d.messagesURL, href)
			return false
		}
		return true
	})
	if pageURL == "" {
		return Result{}, errors.New("no message page for today on messages listing")
	}

	page, err := d.fetchDoc(ctx, pageURL)
	if err != nil {
		return Result{}, err
	}

	var guideURL string
	page.Find("a[href]").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(sel.Text()), guideLinkText) {
			return true
		}
		href, _ := sel.Attr("href")
		guideURL = resolveURL(pageURL, href)
		return false
	})
	if guideURL == "" {
		return Result{}, fmt.Errorf("no discussion guide anchor on %s", pageURL)
	}

	return Result{Link: guide.Link{URL: guideURL, Date: today, Context: pageURL}}, nil
}

// fromSeriesResources walks learn page -> current series resources and
// date-scores every guide anchor there, preferring an exact match for
// today.
func (d *Discoverer) fromSeriesResources(ctx context.Context, today time.Time) (Result, error) {
	resourcesURL, err := d.currentSeriesResourcesURL(ctx)
	if err != nil {
		return Result{}, err
	}

	doc, err := d.fetchDoc(ctx, resourcesURL)
	if err != nil {
		return Result{}, err
	}

	title := ""
	doc.Find("h1,h2").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if t := strings.TrimSpace(sel.Text()); t != "" {
			title = t
			return false
		}
		return true
	})

	links := d.collectGuideLinks(doc, resourcesURL, today)
	best, ok := pickLink(links, today, true)
	if !ok {
		return Result{}, fmt.Errorf("no dated discussion guide anchors on %s", resourcesURL)
	}
	return Result{Link: best, SeriesTitle: title}, nil
}

// currentSeriesResourcesURL finds the first "Resources" link on the
// learn page that appears before the "Past Series" marker, or the
// first one at all when no marker exists.
func (d *Discoverer) currentSeriesResourcesURL(ctx context.Context) (string, error) {
	doc, err := d.fetchDoc(ctx, d.learnURL)
	if err != nil {
		return "", err
	}

	// Walk headings and anchors together in document order so "before
	// the marker" falls out of traversal order.
	var href string
	doc.Find("h2,h3,h4,h5,a").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		name := goquery.NodeName(sel)
		if name != "a" {
			if strings.Contains(sel.Text(), "Past Series") {
				return false
			}
			return true
		}
		if strings.TrimSpace(sel.Text()) != "Resources" {
			return true
		}
		if h, ok := sel.Attr("href"); ok {
			href = h
			return false
		}
		return true
	})
	if href == "" {
		return "", errors.New("no current series Resources link on learn page")
	}
	return resolveURL(d.learnURL, href), nil
}

// collectGuideLinks gathers every guide anchor on the page along with
// its context-resolved date. Anchors whose context yields no dates are
// excluded.
func (d *Discoverer) collectGuideLinks(doc *goquery.Document, baseURL string, today time.Time) []guide.Link {
	var links []guide.Link
	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		if !strings.Contains(strings.ToLower(sel.Text()), guideLinkText) {
			return
		}
		ctxText := CollectContext(sel, defaultAncestorDepth)
		found := dates.ExtractDates(ctxText, today.Year())
		if len(found) == 0 {
			return
		}
		href, _ := sel.Attr("href")
		links = append(links, guide.Link{
			URL:     resolveURL(baseURL, href),
			Date:    dates.Resolve(found, today),
			Context: ctxText,
		})
	})
	return links
}

// pickLink selects among dated links: an exact match for today when
// exactFirst is set, else the latest link dated on or before today,
// else the latest-dated link overall.
func pickLink(links []guide.Link, today time.Time, exactFirst bool) (guide.Link, bool) {
	if len(links) == 0 {
		return guide.Link{}, false
	}

	if exactFirst {
		for _, l := range links {
			if dates.SameDay(l.Date, today) {
				return l, true
			}
		}
	}

	var bestPast, bestAny guide.Link
	for _, l := range links {
		if l.Date.After(bestAny.Date) {
			bestAny = l
		}
		if !l.Date.After(today) && l.Date.After(bestPast.Date) {
			bestPast = l
		}
	}
	if bestPast.HasDate() {
		return bestPast, true
	}
	return bestAny, true
}

func (d *Discoverer) fetchDoc(ctx context.Context, pageURL string) (*goquery.Document, error) {
	body, _, err := d.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pageURL, err)
	}
	return doc, nil
}

// resolveURL makes href absolute against base; on any parse failure it
// returns href unchanged.
func resolveURL(base, href string) string {
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	r, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(r).String()
}
