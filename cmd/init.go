package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abbrtip/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an abbrtip configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the docs and output directories and the definitions file, and writes the answers to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
