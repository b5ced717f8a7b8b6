package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCollections []string

func init() {
	searchCmd.Flags().StringSliceVar(&searchCollections, "collections", nil,
		"Restrict the search to these collections")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <pattern>",
	Short: "Find citation keys matching a pattern",
	Long: `Find citation keys matching a pattern.

Results are ranked: citekey prefix matches first, then author-surname
prefix matches, then title prefix matches, then the same three as
substring matches. Each line is formatted for editor completion:

  key#citekey<TAB>author surnames<TAB>(year) title

Examples:
  zotref search smith
  zotref search ecology --collections "Thesis,To Read"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig()
	lib := openLibrary(cfg)

	if len(searchCollections) > 0 {
		if msg := lib.Bind("", searchCollections); msg != "" {
			exitWithError(ExitDataError, "%s", msg)
		}
	}

	lines, err := lib.Search(strings.ToLower(args[0]), "")
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
