package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/abbrtip/internal/tooltip"
	"github.com/ziadkadry99/abbrtip/internal/walker"
)

// envPrefix selects environment overrides. A double underscore separates
// nested keys: ABBRTIP_TOOLTIP__GRACE_MS -> tooltip.grace_ms.
const envPrefix = "ABBRTIP_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ABBRTIP_*). A missing file yields the
// defaults. The directory of path becomes the project root.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	root, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving project root: %w", err)
	}
	cfg.Root = root

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if c.SiteDir == "" {
		return fmt.Errorf("site_dir is required")
	}
	if filepath.Clean(c.DocsDir) == filepath.Clean(c.SiteDir) {
		return fmt.Errorf("site_dir must differ from docs_dir")
	}
	if c.Definitions == "" {
		return fmt.Errorf("definitions is required")
	}
	if err := walker.ValidatePatterns(c.Include); err != nil {
		return fmt.Errorf("include: %w", err)
	}
	if err := walker.ValidatePatterns(c.Exclude); err != nil {
		return fmt.Errorf("exclude: %w", err)
	}
	if c.Tooltip.GraceMS < 0 {
		return fmt.Errorf("tooltip.grace_ms must be non-negative")
	}
	if c.Tooltip.MarginPX < 0 {
		return fmt.Errorf("tooltip.margin_px must be non-negative")
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve.port %d", c.Serve.Port)
	}
	return nil
}

// DocsPath returns the absolute docs directory.
func (c *Config) DocsPath() string { return c.resolve(c.DocsDir) }

// SitePath returns the absolute output directory.
func (c *Config) SitePath() string { return c.resolve(c.SiteDir) }

// DefinitionsPath returns the absolute path of the definitions file.
func (c *Config) DefinitionsPath() string { return c.resolve(c.Definitions) }

// TooltipOptions converts the tooltip section for the page script.
func (c *Config) TooltipOptions() tooltip.Options {
	return tooltip.Options{
		GraceDelay: time.Duration(c.Tooltip.GraceMS) * time.Millisecond,
		Margin:     c.Tooltip.MarginPX,
		CancelKey:  c.Tooltip.CancelKey,
	}
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	root := c.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, p)
}

// splitAndTrim splits a comma-separated string and trims whitespace,
// dropping empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
