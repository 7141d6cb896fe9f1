package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/manifoldco/promptui"
)

// detectDocsDir returns the first conventional docs directory present in the
// working directory.
func detectDocsDir() string {
	for _, dir := range []string{"docs", "doc", "documentation", "content"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to abbrtip! Let's configure your documentation project.")
	fmt.Println()

	def := DefaultConfig()

	projectName := def.ProjectName
	if wd, err := os.Getwd(); err == nil {
		projectName = filepath.Base(wd)
	}

	// 1. Project name.
	namePrompt := promptui.Prompt{
		Label:   "Project name",
		Default: projectName,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("project name: %w", err)
	}

	// 2. Docs directory.
	docsPrompt := promptui.Prompt{
		Label:   "Directory containing Markdown pages",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}

	// 3. Output directory.
	sitePrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: def.SiteDir,
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}

	// 4. Definitions file.
	defsPrompt := promptui.Prompt{
		Label:   "Abbreviation definitions file",
		Default: def.Definitions,
	}
	definitions, err := defsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("definitions: %w", err)
	}

	// 5. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}

	// 6. Preview port.
	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: strconv.Itoa(def.Serve.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := def
	cfg.ProjectName = name
	cfg.DocsDir = docsDir
	cfg.SiteDir = siteDir
	cfg.Definitions = definitions
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)
	cfg.Serve.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cfg.DefinitionsPath()); err != nil {
		fmt.Printf("\nNote: %s does not exist yet; pages will build without tooltips until it does.\n", definitions)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
