// Package plugin wires the abbreviation index into the site build. A Plugin
// is created once per build from configuration and then applied to every
// page: PageMarkdown before rendering, PostPage after.
package plugin

import (
	"fmt"

	"github.com/ziadkadry99/abbrtip/internal/abbr"
	"github.com/ziadkadry99/abbrtip/internal/config"
	"github.com/ziadkadry99/abbrtip/internal/tooltip"
)

// Plugin holds the definitions loaded for one build. It is read-only after
// construction and safe to share between goroutines.
type Plugin struct {
	index       *abbr.Index
	substituter *abbr.Substituter
	injector    *tooltip.Injector
	source      string
}

// New loads the definitions file named by cfg and prepares the page hooks.
// A missing definitions file yields a plugin with an empty index.
func New(cfg *config.Config) (*Plugin, error) {
	path := cfg.DefinitionsPath()
	idx, err := abbr.Load(path)
	if err != nil {
		return nil, err
	}
	p, err := FromIndex(idx, cfg.TooltipOptions())
	if err != nil {
		return nil, err
	}
	p.source = path
	return p, nil
}

// FromIndex builds a plugin around an already parsed index.
func FromIndex(idx *abbr.Index, opts tooltip.Options) (*Plugin, error) {
	if idx == nil {
		idx = abbr.NewIndex()
	}
	inj, err := tooltip.NewInjector(opts)
	if err != nil {
		return nil, fmt.Errorf("preparing tooltip assets: %w", err)
	}
	return &Plugin{
		index:       idx,
		substituter: abbr.NewSubstituter(idx),
		injector:    inj,
	}, nil
}

// Index returns the loaded definitions.
func (p *Plugin) Index() *abbr.Index { return p.index }

// Len returns the number of loaded definitions.
func (p *Plugin) Len() int { return p.index.Len() }

// Keys returns the defined abbreviations in definition order.
func (p *Plugin) Keys() []string { return p.index.Keys() }

// Source returns the definitions path, or "" when built from an index.
func (p *Plugin) Source() string { return p.source }

// PageMarkdown rewrites abbreviation occurrences in raw page source into
// tooltip markers and reports how many markers were written.
func (p *Plugin) PageMarkdown(src string) (string, int) {
	return p.substituter.SubstituteStats(src)
}

// PostPage appends the tooltip stylesheet and script to a rendered page.
// Call it exactly once per page.
func (p *Plugin) PostPage(html string) string {
	return p.injector.Inject(html)
}
