// Package config holds the pipeline configuration: site root URLs,
// fetch policy, timezone, and output locations. Everything the
// discoverer and pipeline need arrives through an explicit Config
// value, never through package-level state.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration lets timeouts be written as "30s" in YAML.
type Duration time.Duration

// UnmarshalYAML parses the Go duration syntax.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts back to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the full runtime configuration.
type Config struct {
	Site struct {
		// MessagesURL is the weekly messages listing page.
		MessagesURL string `yaml:"messagesURL"`
		// LearnURL is the series index page used by the resources
		// fallback.
		LearnURL string `yaml:"learnURL"`
	} `yaml:"site"`

	Fetch struct {
		UserAgent string   `yaml:"userAgent"`
		Timeout   Duration `yaml:"timeout"`
	} `yaml:"fetch"`

	// Timezone names the zone "today" is computed in.
	Timezone string `yaml:"timezone"`

	Output struct {
		JSON         string `yaml:"json"`
		SiteDir      string `yaml:"siteDir"`
		TemplateFile string `yaml:"templateFile"`
		StaticDir    string `yaml:"staticDir"`
	} `yaml:"output"`
}

// Default returns the configuration for the Blackhawk site.
func Default() Config {
	var c Config
	c.Site.MessagesURL = "https://blackhawk.church/messages/"
	c.Site.LearnURL = "https://blackhawk.church/learn/"
	c.Fetch.Timeout = Duration(30 * time.Second)
	c.Timezone = "America/Chicago"
	c.Output.JSON = "site/data/guide.json"
	c.Output.SiteDir = "site"
	c.Output.TemplateFile = "templates/page.html"
	c.Output.StaticDir = "static"
	return c
}

// Load reads a YAML config file over the defaults. Unset fields keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	return c, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Today returns the current calendar day in the configured zone,
// truncated to midnight UTC for date comparisons.
func (c Config) Today() (time.Time, error) {
	loc, err := c.Location()
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
}
