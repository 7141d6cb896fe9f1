package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abbrtip/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "abbrtip",
	Short: "Multi-line abbreviation tooltips for Markdown documentation sites",
	Long: `abbrtip builds a static documentation site from Markdown and turns every
defined abbreviation into a hover tooltip. Definitions may span several
lines; statute-style numbering (條, 項, 款, 目, 一、, (1), (a)) is indented
by level inside the tooltip.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
