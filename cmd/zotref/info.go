package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show resolved paths, bindings, and per-collection entry counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig()
		lib := openLibrary(cfg)
		return outputJSON(lib.Info())
	},
}
