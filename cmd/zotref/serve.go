package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matsen/zotref/internal/library"
)

// stalenessInterval throttles mtime checks while serving; completion
// requests arrive per keystroke and do not need a stat each.
var stalenessInterval time.Duration

func init() {
	serveCmd.Flags().DurationVar(&stalenessInterval, "staleness-interval", 2*time.Second,
		"Minimum time between checks of the database's modification time (0 = every request)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve editor requests as JSON lines over stdin/stdout",
	Long: `Serve editor requests as JSON lines over stdin/stdout.

One request per line, one response per line. Requests:

  {"op":"bind","doc":"<name>","collections":["<c1>",...]}
  {"op":"search","doc":"<name>","pattern":"<lowercase pattern>"}
  {"op":"yaml","keys":["<zotkey#citekey>",...]}
  {"op":"attachment","key":"<zotkey>"}
  {"op":"info"}

Collection bindings persist for the lifetime of the session. An empty
collection list binds a document to every collection.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// serveRequest is one editor request.
type serveRequest struct {
	Op          string   `json:"op"`
	Doc         string   `json:"doc,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Collections []string `json:"collections,omitempty"`
	Keys        []string `json:"keys,omitempty"`
	Key         string   `json:"key,omitempty"`
}

// serveResponse is one reply. Exactly one payload field is set on success.
type serveResponse struct {
	OK         bool          `json:"ok"`
	Error      string        `json:"error,omitempty"`
	Lines      []string      `json:"lines,omitempty"`
	YAML       string        `json:"yaml,omitempty"`
	Attachment string        `json:"attachment,omitempty"`
	Info       *library.Info `json:"info,omitempty"`
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig()
	lib, err := library.Open(library.Options{
		SQLitePath:        cfg.SQLitePath,
		CacheDir:          cfg.CacheDir,
		CiteTemplate:      cfg.CiteTemplate,
		BannedWords:       cfg.BannedWords,
		StalenessInterval: stalenessInterval,
	})
	if err != nil {
		exitWithError(ExitError, "loading zotero database: %v", err)
	}

	return serveLoop(lib, os.Stdin, os.Stdout)
}

// serveLoop reads requests until EOF. Malformed requests produce error
// responses, not a dead session; only I/O failures end the loop.
func serveLoop(lib *library.Library, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req serveRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			if err := enc.Encode(serveResponse{Error: fmt.Sprintf("malformed request: %v", err)}); err != nil {
				return err
			}
			continue
		}

		if err := enc.Encode(handle(lib, req)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func handle(lib *library.Library, req serveRequest) serveResponse {
	switch req.Op {
	case "bind":
		if msg := lib.Bind(req.Doc, req.Collections); msg != "" {
			return serveResponse{Error: msg}
		}
		return serveResponse{OK: true}

	case "search":
		lines, err := lib.Search(req.Pattern, req.Doc)
		if err != nil {
			return serveResponse{Error: err.Error()}
		}
		return serveResponse{OK: true, Lines: lines}

	case "yaml":
		out, err := lib.ExportYAML(req.Keys)
		if err != nil {
			return serveResponse{Error: err.Error()}
		}
		return serveResponse{OK: true, YAML: out}

	case "attachment":
		return serveResponse{OK: true, Attachment: lib.Attachment(req.Key)}

	case "info":
		info := lib.Info()
		return serveResponse{OK: true, Info: &info}

	default:
		return serveResponse{Error: fmt.Sprintf("unknown op: %q", req.Op)}
	}
}
