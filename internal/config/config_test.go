package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Site.MessagesURL == "" || c.Site.LearnURL == "" {
		t.Error("default site URLs must be set")
	}
	if c.Fetch.Timeout.Std() != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", c.Fetch.Timeout)
	}
	if c.Timezone != "America/Chicago" {
		t.Errorf("default timezone = %q", c.Timezone)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
site:
  messagesURL: https://example.org/messages/
fetch:
  timeout: 5s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Site.MessagesURL != "https://example.org/messages/" {
		t.Errorf("messagesURL = %q", c.Site.MessagesURL)
	}
	if c.Fetch.Timeout.Std() != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", c.Fetch.Timeout)
	}
	// Untouched fields keep defaults.
	if c.Site.LearnURL != Default().Site.LearnURL {
		t.Errorf("learnURL = %q, want default", c.Site.LearnURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestToday(t *testing.T) {
	c := Default()
	today, err := c.Today()
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if today.Hour() != 0 || today.Location() != time.UTC {
		t.Errorf("Today = %v, want a UTC midnight", today)
	}
}

func TestLocationInvalidZone(t *testing.T) {
	c := Default()
	c.Timezone = "Not/AZone"
	if _, err := c.Location(); err == nil {
		t.Error("expected error for invalid timezone")
	}
}
