package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/config"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/pipeline"
	"github.com/setosa-versicolor/BlackhawkDiscussionGuide/internal/site"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagOverride string
	flagOutJSON  string
	flagSiteDir  string
	flagFormat   string
	flagServe    string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide-update",
		Short: "Build this week's discussion guide site",
		Long: `Discovers this week's discussion guide on the church website,
parses its questions and sections, and writes a deployable site/
directory with the guide data as JSON.`,
		RunE: runUpdate,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.Flags().StringVar(&flagOverride, "override", "", "Force a specific source URL (HTML or PDF)")
	cmd.Flags().StringVar(&flagOutJSON, "out-json", "", "Where to write the guide JSON (default from config)")
	cmd.Flags().StringVar(&flagSiteDir, "site-dir", "", "Site output directory (default from config)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary output format: text or json")
	cmd.Flags().StringVar(&flagServe, "serve", "", "After building, serve the site directory on this address (e.g. :8080)")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runUpdate is the main command logic
func runUpdate(cmd *cobra.Command, args []string) error {
	log := newLogger(flagVerbose)

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg := config.Default()
	if flagConfig != "" {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
	}
	if flagOutJSON != "" {
		cfg.Output.JSON = flagOutJSON
	}
	if flagSiteDir != "" {
		cfg.Output.SiteDir = flagSiteDir
	}

	today, err := cfg.Today()
	if err != nil {
		return err
	}
	log.Debug().Str("today", today.Format("2006-01-02")).Msg("starting update")

	p := pipeline.New(cfg, log)
	p.OverrideURL = flagOverride

	result, err := p.Run(context.Background(), today)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	writer := site.NewWriter(cfg, log)
	if err := writer.WriteJSON(result.Guide, cfg.Output.JSON); err != nil {
		return err
	}
	if err := writer.RenderPage(pageData(result)); err != nil {
		return err
	}
	if err := writer.MirrorStatic(); err != nil {
		return err
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagServe != "" {
		return site.Serve(flagServe, cfg.Output.SiteDir, log)
	}
	return nil
}

// pageData flattens a pipeline result into template input: questions
// become the bullets of a leading Reflect + Discuss block, each parsed
// section becomes a paragraph block.
func pageData(result *pipeline.Result) site.PageData {
	titleLine := "Discussion Guide"
	if len(result.Guide.Questions) > 0 {
		titleLine = "Reflect + Discuss"
	}

	sections := []site.PageSection{
		{Heading: "Reflect + Discuss", Bullets: result.Guide.Questions},
	}
	for _, s := range result.Guide.Sections {
		sections = append(sections, site.PageSection{
			Heading: s.Title,
			Paras:   []string{s.Body},
		})
	}

	return site.PageData{
		SeriesTitle: result.SeriesTitle,
		TitleLine:   titleLine,
		DateStr:     result.Date.Format("Monday, January 2, 2006"),
		Sections:    sections,
		PDFURL:      result.Guide.URL,
		Updated:     time.Now().Format("2006-01-02 3:04 PM MST"),
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
