package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abbrtip/internal/plugin"
	"github.com/ziadkadry99/abbrtip/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site with abbreviation tooltips",
	Long:  `Renders every Markdown page under docs_dir into site_dir, marking each defined abbreviation and attaching the tooltip assets to every page.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override the output directory (defaults to site_dir)")
	buildCmd.Flags().Bool("clean", false, "remove the output directory before building")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.SiteDir = out
	}

	if clean, _ := cmd.Flags().GetBool("clean"); clean {
		if err := os.RemoveAll(cfg.SitePath()); err != nil {
			return fmt.Errorf("cleaning %s: %w", cfg.SitePath(), err)
		}
	}

	p, err := plugin.New(cfg)
	if err != nil {
		return fmt.Errorf("loading abbreviations: %w", err)
	}
	fmt.Printf("Loaded %d abbreviations from %s\n", p.Len(), cfg.Definitions)
	if verbose {
		for _, k := range p.Keys() {
			fmt.Printf("  %s\n", k)
		}
	}

	gen := newGenerator(cfg, p)
	gen.Reporter = progress.NewReporter()
	m, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site built: %s (%d pages, %d tooltip markers)\n", cfg.SitePath(), len(m.Pages), m.TotalMarkers)
	if verbose {
		for _, rec := range m.Pages {
			fmt.Printf("  %-40s %d\n", rec.Source, rec.Markers)
		}
		fmt.Printf("Build %s\n", m.BuildID)
	}
	return nil
}
