package config

// Config is the top-level abbrtip configuration, corresponding to .abbrtip.yml.
type Config struct {
	ProjectName    string        `yaml:"project_name" koanf:"project_name"`
	DocsDir        string        `yaml:"docs_dir" koanf:"docs_dir"`
	SiteDir        string        `yaml:"site_dir" koanf:"site_dir"`
	Definitions    string        `yaml:"definitions" koanf:"definitions"`
	Include        []string      `yaml:"include" koanf:"include"`
	Exclude        []string      `yaml:"exclude" koanf:"exclude"`
	HighlightStyle string        `yaml:"highlight_style" koanf:"highlight_style"`
	Tooltip        TooltipConfig `yaml:"tooltip" koanf:"tooltip"`
	Serve          ServeConfig   `yaml:"serve" koanf:"serve"`

	// Root is the project root: the directory holding the config file.
	// Relative paths above are resolved against it.
	Root string `yaml:"-" koanf:"-"`
}

// TooltipConfig tunes the page script.
type TooltipConfig struct {
	GraceMS   int     `yaml:"grace_ms" koanf:"grace_ms"`
	MarginPX  float64 `yaml:"margin_px" koanf:"margin_px"`
	CancelKey string  `yaml:"cancel_key" koanf:"cancel_key"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	Watch    bool `yaml:"watch" koanf:"watch"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
