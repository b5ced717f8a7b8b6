package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matsen/zotref/internal/attachment"
	"github.com/matsen/zotref/internal/library"
)

var (
	attachmentText  bool
	attachmentPages int
)

func init() {
	attachmentCmd.Flags().BoolVar(&attachmentText, "text", false,
		"Print the attachment's plain text instead of its path (PDF only)")
	attachmentCmd.Flags().IntVar(&attachmentPages, "pages", 0,
		"With --text, limit extraction to the first N pages (0 = all)")
	rootCmd.AddCommand(attachmentCmd)
}

var attachmentCmd = &cobra.Command{
	Use:   "attachment <zotkey>",
	Short: "Look up the attachment of an entry",
	Long: `Look up the attachment of the entry with the given Zotero key.

By default the resolved file path is printed. With --text, the attachment
is opened as a PDF and its plain text is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runAttachment,
}

func runAttachment(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig()
	lib := openLibrary(cfg)

	result := lib.Attachment(args[0])
	switch result {
	case library.UnknownKey:
		exitWithError(ExitDataError, "no entry with key %s", args[0])
	case library.NoAttachment:
		exitWithError(ExitDataError, "entry %s has no attachment", args[0])
	}

	ref, err := attachment.Parse(result)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	path := ref.Resolve(filepath.Dir(cfg.SQLitePath))

	if !attachmentText {
		fmt.Println(path)
		return nil
	}

	if !ref.IsPDF() {
		exitWithError(ExitDataError, "attachment is not a PDF: %s", path)
	}
	text, err := attachment.ExtractText(path, attachmentPages)
	if err != nil {
		exitWithError(ExitError, "extracting text: %v", err)
	}
	fmt.Print(text)
	return nil
}
