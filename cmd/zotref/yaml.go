package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(yamlCmd)
}

var yamlCmd = &cobra.Command{
	Use:   "yaml <key>...",
	Short: "Render a CSL YAML reference block for the given keys",
	Long: `Render a CSL YAML reference block for the given keys.

Keys have the form "zotkey#citekey" as produced by search; matching is on
the zotkey prefix. Item types and field names are translated to their CSL
equivalents. When no key matches anything, the output is empty.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runYAML,
}

func runYAML(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig()
	lib := openLibrary(cfg)

	out, err := lib.ExportYAML(args)
	if err != nil {
		exitWithError(ExitError, "exporting: %v", err)
	}
	fmt.Print(out)
	return nil
}
