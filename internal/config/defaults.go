package config

// DefaultConfigFile is the config file name looked up in the working directory.
const DefaultConfigFile = ".abbrtip.yml"

// DefaultDefinitions is where abbreviation definitions live, relative to the
// project root.
const DefaultDefinitions = "includes/abbreviations.md"

// DefaultExcludes are page globs skipped by default. The definitions file
// itself is usually kept outside docs_dir, but drafts and partials often
// live beside pages.
var DefaultExcludes = []string{
	"**/_*.md",
	"**/drafts/**",
	"node_modules/**",
	".git/**",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ProjectName:    "Documentation",
		DocsDir:        "docs",
		SiteDir:        "site",
		Definitions:    DefaultDefinitions,
		Include:        []string{"**/*.md"},
		Exclude:        append([]string(nil), DefaultExcludes...),
		HighlightStyle: "github",
		Tooltip: TooltipConfig{
			GraceMS:   120,
			MarginPX:  10,
			CancelKey: "Escape",
		},
		Serve: ServeConfig{
			Port:  8000,
			Watch: true,
		},
		Root: ".",
	}
}
