package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/abbrtip/internal/abbr"
)

var abbrCmd = &cobra.Command{
	Use:   "abbr",
	Short: "Inspect the abbreviation definitions",
}

var abbrListCmd = &cobra.Command{
	Use:   "list",
	Short: "List defined abbreviations",
	Args:  cobra.NoArgs,
	RunE:  runAbbrList,
}

var abbrShowCmd = &cobra.Command{
	Use:   "show KEY",
	Short: "Show how a definition is split into levels",
	Long:  `Prints every line of a definition with the indentation level and numbering rule it was classified with. Use --html to print the tooltip fragment instead.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAbbrShow,
}

func init() {
	abbrShowCmd.Flags().Bool("html", false, "print the rendered tooltip HTML")
	abbrCmd.AddCommand(abbrListCmd, abbrShowCmd)
	rootCmd.AddCommand(abbrCmd)
}

func loadIndex() (*abbr.Index, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return abbr.Load(cfg.DefinitionsPath())
}

func runAbbrList(cmd *cobra.Command, args []string) error {
	idx, err := loadIndex()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if idx.Len() == 0 {
		fmt.Fprintln(out, "No abbreviations defined.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLINES\tFIRST LINE")
	for _, key := range idx.Keys() {
		doc, _ := idx.Get(key)
		fmt.Fprintf(w, "%s\t%d\t%s\n", key, len(doc.Lines), firstText(doc))
	}
	return w.Flush()
}

func runAbbrShow(cmd *cobra.Command, args []string) error {
	idx, err := loadIndex()
	if err != nil {
		return err
	}
	doc, ok := idx.Get(args[0])
	if !ok {
		return fmt.Errorf("abbreviation %q is not defined", args[0])
	}

	out := cmd.OutOrStdout()
	if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
		fmt.Fprintln(out, doc.HTML)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tRULE\tTEXT")
	for _, line := range doc.Lines {
		_, rule := abbr.ClassifyRule(line.Text)
		if rule == "" {
			rule = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s%s\n", line.Level, rule, strings.Repeat("  ", line.Level), line.Text)
	}
	return w.Flush()
}

// firstText returns the first non-blank line of doc.
func firstText(doc abbr.Document) string {
	for _, l := range doc.Lines {
		if t := strings.TrimSpace(l.Text); t != "" {
			return t
		}
	}
	return ""
}
