package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/config"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(data []byte) (string, error) {
	return f.text, f.err
}

func newTestPipeline(t *testing.T, mux *http.ServeMux, extracted string) (*Pipeline, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Site.MessagesURL = srv.URL + "/messages/"
	cfg.Site.LearnURL = srv.URL + "/learn/"

	p := New(cfg, zerolog.Nop())
	p.extractor = &fakeExtractor{text: extracted}
	return p, srv
}

const guidePageHTML = `<html><body>
<h2>Reflect + Discuss</h2>
<p>– What stood out to you?</p>
<p>– How will you respond?</p>
</body></html>`

func TestRunWithOverrideHTML(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/guide", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(guidePageHTML))
	})

	p, srv := newTestPipeline(t, mux, "")
	p.OverrideURL = srv.URL + "/guide"

	res, err := p.Run(context.Background(), time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"What stood out to you?", "How will you respond?"}
	if diff := cmp.Diff(want, res.Guide.Questions); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
	if res.Guide.URL != p.OverrideURL {
		t.Errorf("guide URL = %q, want %q", res.Guide.URL, p.OverrideURL)
	}
}

func TestRunEscalatesToEmbeddedPDF(t *testing.T) {
	const pdfText = `Week 4 Guide
Reflect + Discuss
– What does this passage teach?
– Why does it matter?`

	mux := http.NewServeMux()
	mux.HandleFunc("/guide", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
<p>Download the guide below.</p>
<a href="/files/week4.pdf">Download</a>
</body></html>`))
	})
	var pdfFetched bool
	mux.HandleFunc("/files/week4.pdf", func(w http.ResponseWriter, r *http.Request) {
		pdfFetched = true
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 stub"))
	})

	p, srv := newTestPipeline(t, mux, pdfText)
	p.OverrideURL = srv.URL + "/guide"

	res, err := p.Run(context.Background(), time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !pdfFetched {
		t.Fatal("embedded PDF was never fetched")
	}

	want := []string{"What does this passage teach?", "Why does it matter?"}
	if diff := cmp.Diff(want, res.Guide.Questions); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
	if wantURL := srv.URL + "/files/week4.pdf"; res.Guide.URL != wantURL {
		t.Errorf("guide URL = %q, want the escalated PDF %q", res.Guide.URL, wantURL)
	}
}

func TestRunZeroQuestionsWithoutPDFIsValid(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/guide", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><p>Check back soon.</p></body></html>"))
	})

	p, srv := newTestPipeline(t, mux, "")
	p.OverrideURL = srv.URL + "/guide"

	res, err := p.Run(context.Background(), time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Guide.Questions) != 0 {
		t.Errorf("questions = %v, want none", res.Guide.Questions)
	}
}

func TestRunSniffsPDFByContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/guide", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 stub"))
	})

	p, srv := newTestPipeline(t, mux, "Guide\nReflect + Discuss\n– What now?")
	p.OverrideURL = srv.URL + "/guide"

	res, err := p.Run(context.Background(), time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Guide.Questions) != 1 || res.Guide.Questions[0] != "What now?" {
		t.Errorf("questions = %v, want [What now?]", res.Guide.Questions)
	}
}

func TestRunDiscoversAndParses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/messages/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>
<div class="card">
  <span>September 21</span>
  <a href="/guide">Discussion Guide</a>
</div>
</body></html>`))
	})
	mux.HandleFunc("/guide", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(guidePageHTML))
	})

	p, srv := newTestPipeline(t, mux, "")

	res, err := p.Run(context.Background(), time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if want := srv.URL + "/guide"; res.Guide.URL != want {
		t.Errorf("guide URL = %q, want %q", res.Guide.URL, want)
	}
	if len(res.Guide.Questions) != 2 {
		t.Errorf("questions = %v, want 2 items", res.Guide.Questions)
	}
	if !res.Date.Equal(time.Date(2024, 9, 21, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("resolved date = %v, want 2024-09-21", res.Date)
	}
}
