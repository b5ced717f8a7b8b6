// Package attachment resolves Zotero attachment strings to files on disk
// and extracts text previews from PDF attachments.
package attachment

import (
	"fmt"
	"path/filepath"
	"strings"
)

// storagePrefix marks attachment paths managed inside the Zotero data
// directory (storage/<attachment key>/<file name>).
const storagePrefix = "storage:"

// Ref is a parsed attachment string of the form "key:path".
type Ref struct {
	Key  string // the attachment item's Zotero key
	Path string // raw path as stored, possibly "storage:"-prefixed
}

// Parse splits an attachment string into its key and path parts.
func Parse(s string) (Ref, error) {
	i := strings.IndexByte(s, ':')
	if i <= 0 {
		return Ref{}, fmt.Errorf("malformed attachment string: %q", s)
	}
	return Ref{Key: s[:i], Path: s[i+1:]}, nil
}

// Resolve turns a parsed attachment into an absolute file path.
// dataDir is the directory holding zotero.sqlite; managed attachments live
// under its storage/ tree. Non-managed paths are returned as stored.
func (r Ref) Resolve(dataDir string) string {
	if name, ok := strings.CutPrefix(r.Path, storagePrefix); ok {
		return filepath.Join(dataDir, "storage", r.Key, name)
	}
	return r.Path
}

// IsPDF reports whether the attachment's file name looks like a PDF.
func (r Ref) IsPDF() bool {
	return strings.EqualFold(filepath.Ext(r.Path), ".pdf")
}
