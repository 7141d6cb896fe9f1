package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DocsDir != "docs" {
		t.Errorf("expected default docs_dir %q, got %q", "docs", cfg.DocsDir)
	}
	if cfg.SiteDir != "site" {
		t.Errorf("expected default site_dir %q, got %q", "site", cfg.SiteDir)
	}
	if cfg.Definitions != "includes/abbreviations.md" {
		t.Errorf("expected default definitions %q, got %q", "includes/abbreviations.md", cfg.Definitions)
	}
	if cfg.Tooltip.GraceMS != 120 {
		t.Errorf("expected default grace 120ms, got %d", cfg.Tooltip.GraceMS)
	}
	if cfg.Serve.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Serve.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.abbrtip.yml")

	original := DefaultConfig()
	original.ProjectName = "Tax Handbook"
	original.DocsDir = "pages"
	original.Definitions = "glossary/abbr.md"
	original.Include = []string{"**/*.md", "extra/*.markdown", "more/**"}
	original.Tooltip.MarginPX = 12.5
	original.Serve.Port = 9090

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ProjectName != original.ProjectName {
		t.Errorf("project_name: got %q, want %q", loaded.ProjectName, original.ProjectName)
	}
	if loaded.DocsDir != original.DocsDir {
		t.Errorf("docs_dir: got %q, want %q", loaded.DocsDir, original.DocsDir)
	}
	if loaded.Definitions != original.Definitions {
		t.Errorf("definitions: got %q, want %q", loaded.Definitions, original.Definitions)
	}
	if loaded.Tooltip.MarginPX != original.Tooltip.MarginPX {
		t.Errorf("margin_px: got %f, want %f", loaded.Tooltip.MarginPX, original.Tooltip.MarginPX)
	}
	if loaded.Serve.Port != original.Serve.Port {
		t.Errorf("port: got %d, want %d", loaded.Serve.Port, original.Serve.Port)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Fatalf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.DocsDir != "docs" {
		t.Errorf("expected default docs_dir, got %q", cfg.DocsDir)
	}
}

func TestLoadSetsRoot(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, DefaultConfigFile))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want, _ := filepath.Abs(dir)
	if cfg.Root != want {
		t.Errorf("root: got %q, want %q", cfg.Root, want)
	}
	if got := cfg.DefinitionsPath(); got != filepath.Join(want, "includes", "abbreviations.md") {
		t.Errorf("DefinitionsPath = %q", got)
	}
	if got := cfg.DocsPath(); got != filepath.Join(want, "docs") {
		t.Errorf("DocsPath = %q", got)
	}
}

func TestAbsolutePathsKept(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = "/project"
	abs := filepath.Join(t.TempDir(), "defs.md")
	cfg.Definitions = abs
	if got := cfg.DefinitionsPath(); got != abs {
		t.Errorf("DefinitionsPath = %q, want %q", got, abs)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("ABBRTIP_PROJECT_NAME", "From Env")
	t.Setenv("ABBRTIP_TOOLTIP__CANCEL_KEY", "q")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ProjectName != "From Env" {
		t.Errorf("env override failed: got %q, want %q", loaded.ProjectName, "From Env")
	}
	if loaded.Tooltip.CancelKey != "q" {
		t.Errorf("nested env override failed: got %q, want %q", loaded.Tooltip.CancelKey, "q")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty docs_dir", func(c *Config) { c.DocsDir = "" }},
		{"empty site_dir", func(c *Config) { c.SiteDir = "" }},
		{"site equals docs", func(c *Config) { c.SiteDir = "./docs" }},
		{"empty definitions", func(c *Config) { c.Definitions = "" }},
		{"negative grace", func(c *Config) { c.Tooltip.GraceMS = -1 }},
		{"negative margin", func(c *Config) { c.Tooltip.MarginPX = -2 }},
		{"port too large", func(c *Config) { c.Serve.Port = 70000 }},
		{"bad include glob", func(c *Config) { c.Include = []string{"[md"} }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestTooltipOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tooltip.GraceMS = 300
	opts := cfg.TooltipOptions()
	if opts.GraceDelay != 300*time.Millisecond {
		t.Errorf("GraceDelay = %v, want 300ms", opts.GraceDelay)
	}
	if opts.Margin != 10 || opts.CancelKey != "Escape" {
		t.Errorf("opts = %+v", opts)
	}
}

func TestDetectDocsDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	if got := detectDocsDir(); got != "docs" {
		t.Errorf("detectDocsDir = %q, want fallback docs", got)
	}
	if err := os.Mkdir("content", 0o755); err != nil {
		t.Fatal(err)
	}
	if got := detectDocsDir(); got != "content" {
		t.Errorf("detectDocsDir = %q, want content", got)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.md", []string{"**/*.md"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
