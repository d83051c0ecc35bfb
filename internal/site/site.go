package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/config"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/guide"
)

// PageSection is one rendered block on the generated page.
type PageSection struct {
	Heading string
	Bullets []string
	Paras   []string
}

// PageData feeds the index.html template.
type PageData struct {
	SeriesTitle string
	TitleLine   string
	DateStr     string
	Sections    []PageSection
	PDFURL      string
	Updated     string
}

// Writer stages the site directory.
type Writer struct {
	siteDir      string
	templateFile string
	staticDir    string
	log          zerolog.Logger
}

// NewWriter creates a Writer from the output configuration.
func NewWriter(cfg config.Config, log zerolog.Logger) *Writer {
	return &Writer{
		siteDir:      cfg.Output.SiteDir,
		templateFile: cfg.Output.TemplateFile,
		staticDir:    cfg.Output.StaticDir,
		log:          log,
	}
}

// WriteJSON writes the guide record to path, creating parent
// directories as needed.
func (w *Writer) WriteJSON(g *guide.Guide, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding guide: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing guide: %w", err)
	}
	w.log.Info().Str("path", path).
		Int("questions", len(g.Questions)).
		Int("sections", len(g.Sections)).
		Msg("wrote guide JSON")
	return nil
}

// RenderPage renders index.html from the configured template. A
// missing template skips rendering silently.
func (w *Writer) RenderPage(data PageData) error {
	if _, err := os.Stat(w.templateFile); os.IsNotExist(err) {
		w.log.Debug().Str("template", w.templateFile).Msg("no page template, skipping render")
		return nil
	}
	tpl, err := template.ParseFiles(w.templateFile)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}
	if err := os.MkdirAll(w.siteDir, 0755); err != nil {
		return fmt.Errorf("creating site directory: %w", err)
	}

	out := filepath.Join(w.siteDir, "index.html")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	defer f.Close()

	if err := tpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering index.html: %w", err)
	}
	w.log.Info().Str("path", out).Msg("wrote index.html")
	return nil
}

// MirrorStatic copies the static asset tree into the site directory.
// A missing source directory is not an error.
func (w *Writer) MirrorStatic() error {
	info, err := os.Stat(w.staticDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking static directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("static path %s is not a directory", w.staticDir)
	}

	dst := filepath.Join(w.siteDir, "static")
	return filepath.WalkDir(w.staticDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(w.staticDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return nil
}
