// Package library owns the in-memory citation index and the operations an
// editor integration calls: bind, search, export, attachment lookup, info.
package library

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/matsen/zotref/internal/citekey"
	"github.com/matsen/zotref/internal/csl"
	"github.com/matsen/zotref/internal/reference"
	"github.com/matsen/zotref/internal/zotero"
)

// Attachment lookup sentinels, kept verbatim from the original editor
// protocol so existing plugins keep working.
const (
	NoAttachment = "nOaTtAChMeNt" // key known, nothing attached
	UnknownKey   = "nOcItEkEy"    // no entry with that key
)

// Options configures a Library.
type Options struct {
	SQLitePath   string
	CacheDir     string
	CiteTemplate string
	BannedWords  string

	// StalenessInterval throttles the mtime stat performed on search and
	// export calls, so per-keystroke completion does not hit the
	// filesystem every time. Zero means check on every call.
	StalenessInterval time.Duration
}

// Library is the long-lived service state. One logical caller at a time is
// the expected mode; the lock makes concurrent hosting safe by serializing
// reload-and-swap against readers.
type Library struct {
	mu      sync.RWMutex
	opts    Options
	gen     *citekey.Generator
	index   *reference.Index
	docs    map[string][]string // document -> allowed collections
	loadMod time.Time           // source mtime at last load
	limiter *rate.Limiter
}

// Open loads the database and returns a ready Library. A missing or
// unreadable database is an error; there is no degraded mode.
func Open(opts Options) (*Library, error) {
	limit := rate.Inf
	if opts.StalenessInterval > 0 {
		limit = rate.Every(opts.StalenessInterval)
	}
	l := &Library{
		opts:    opts,
		gen:     citekey.New(opts.CiteTemplate, opts.BannedWords),
		docs:    make(map[string][]string),
		limiter: rate.NewLimiter(limit, 1),
	}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// reload rebuilds the index from the source database. The caller must hold
// the write lock, except during Open.
func (l *Library) reload() error {
	info, err := os.Stat(l.opts.SQLitePath)
	if err != nil {
		return fmt.Errorf("zotero database: %w", err)
	}
	raw, err := zotero.Load(l.opts.SQLitePath, l.opts.CacheDir)
	if err != nil {
		return err
	}
	l.index = Normalize(raw, l.gen)
	l.loadMod = info.ModTime()
	return nil
}

// checkStale reloads the index when the source file's mtime has advanced
// past the last load. Content changes without an mtime bump go unnoticed.
func (l *Library) checkStale() error {
	if !l.limiter.Allow() {
		return nil
	}
	info, err := os.Stat(l.opts.SQLitePath)
	if err != nil {
		return fmt.Errorf("zotero database: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if !info.ModTime().After(l.loadMod) {
		return nil
	}
	return l.reload()
}

// Bind records which collections a document may cite from. An empty list
// (or a single empty name) selects every collection. The returned string is
// empty on success or a description of the first unknown collection; on
// error the document's previous binding is left untouched.
func (l *Library) Bind(doc string, collections []string) string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(collections) == 0 || (len(collections) == 1 && collections[0] == "") {
		l.docs[doc] = append([]string(nil), l.index.CollectionNames()...)
		return ""
	}

	bound := make([]string, 0, len(collections))
	for _, c := range collections {
		if !l.index.HasCollection(c) {
			return fmt.Sprintf("Collection %q not found in Zotero database.", c)
		}
		bound = append(bound, c)
	}
	l.docs[doc] = bound
	return ""
}

// Search returns completion lines for the pattern, scoped to the
// collections bound to doc. The pattern must already be lowercase. An
// unbound document searches every collection. No match yields an empty
// list, not an error.
func (l *Library) Search(pattern, doc string) ([]string, error) {
	if err := l.checkStale(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	collections := l.docs[doc]
	if len(collections) == 0 {
		collections = l.index.CollectionNames()
	}
	return searchIndex(l.index, collections, pattern), nil
}

// ExportYAML renders the entries matching the given "zotkey#citekey" keys
// as a CSL YAML reference block. No match yields an empty string.
func (l *Library) ExportYAML(keys []string) (string, error) {
	if err := l.checkStale(); err != nil {
		return "", err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return csl.ExportYAML(l.index, keys), nil
}

// Attachment returns the attachment string for the entry with the given
// Zotero key, NoAttachment when the entry has none, or UnknownKey when no
// entry matches.
func (l *Library) Attachment(zotkey string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := UnknownKey
	l.index.All(func(e *reference.Entry) bool {
		if e.Key != zotkey {
			return true
		}
		if e.Attachment != "" {
			result = e.Attachment
		} else {
			result = NoAttachment
		}
		return false
	})
	return result
}

// Info is a diagnostic snapshot of the library state.
type Info struct {
	DatabasePath string              `json:"database_path"`
	CacheDir     string              `json:"cache_dir"`
	Documents    map[string][]string `json:"documents"`
	Collections  map[string]int      `json:"collections"`
}

// Info reports resolved paths, per-document bindings, and per-collection
// entry counts.
func (l *Library) Info() Info {
	l.mu.RLock()
	defer l.mu.RUnlock()

	docs := make(map[string][]string, len(l.docs))
	for d, cs := range l.docs {
		docs[d] = append([]string(nil), cs...)
	}
	return Info{
		DatabasePath: l.opts.SQLitePath,
		CacheDir:     l.opts.CacheDir,
		Documents:    docs,
		Collections:  l.index.Counts(),
	}
}
