package cmd

import (
	"fmt"

	"github.com/ziadkadry99/abbrtip/internal/config"
	"github.com/ziadkadry99/abbrtip/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `abbrtip init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newGenerator configures a site generator from cfg.
func newGenerator(cfg *config.Config, hooks site.PageHooks) *site.SiteGenerator {
	gen := site.NewSiteGenerator(cfg.DocsPath(), cfg.SitePath(), cfg.ProjectName)
	gen.Include = cfg.Include
	gen.Exclude = cfg.Exclude
	gen.HighlightStyle = cfg.HighlightStyle
	gen.Hooks = hooks
	return gen
}
