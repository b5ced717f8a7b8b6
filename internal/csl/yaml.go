package csl

import (
	"sort"
	"strings"

	"github.com/matsen/zotref/internal/reference"
)

// excludedFields are CSL field names never rendered as flat scalars: they
// are either handled structurally (issued) or deliberately dropped from the
// reference block (abstract).
var excludedFields = map[string]bool{
	"issued":   true,
	"abstract": true,
}

// ExportYAML renders the entries matching the requested keys as the YAML
// header of a dummy Markdown document, ready for a pandoc-citeproc run.
// Each requested key has the form "zotkey#citekey" and is matched on its
// zotkey prefix. Returns the empty string when nothing matches.
func ExportYAML(index *reference.Index, keys []string) string {
	var b strings.Builder
	for _, name := range index.CollectionNames() {
		for _, e := range index.Collection(name) {
			for _, k := range keys {
				zotkey := k
				if i := strings.IndexByte(k, '#'); i >= 0 {
					zotkey = k[:i]
				}
				if zotkey == e.Key {
					renderEntry(&b, e, k)
				}
			}
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "---\nreferences:\n" + b.String() + "...\n\ndummy text\n"
}

// renderEntry writes one list item. It works on a renamed copy of the
// entry's fields; the cached entry is never modified.
func renderEntry(b *strings.Builder, e *reference.Entry, id string) {
	fields := make(map[string]string, len(e.Fields))
	for f, v := range e.Fields {
		fields[MapField(f)] = escapeQuotes(v)
	}

	b.WriteString("- type: " + MapType(e.Type) + "\n")
	b.WriteString("  id: " + id + "\n")

	for _, role := range reference.CreatorRoles {
		creators := e.Creators[role]
		if len(creators) == 0 {
			continue
		}
		b.WriteString("  " + role + ":\n")
		for _, c := range creators {
			b.WriteString("  - family: \"" + c.Last + "\"\n")
			b.WriteString("    given: \"" + c.First + "\"\n")
		}
	}

	if issued, ok := fields["issued"]; ok {
		writeIssued(b, issued, e.Year)
	}

	names := make([]string, 0, len(fields))
	for f := range fields {
		if !excludedFields[f] {
			names = append(names, f)
		}
	}
	sort.Strings(names)
	for _, f := range names {
		b.WriteString("  " + f + ": \"" + fields[f] + "\"\n")
	}
}

// writeIssued renders the date as nested year/month/day. Zero placeholders
// ("0000" year, "00" month or day) and missing segments are omitted.
func writeIssued(b *strings.Builder, issued, year string) {
	if i := strings.IndexByte(issued, ' '); i >= 0 {
		issued = issued[:i]
	}
	parts := strings.Split(issued, "-")
	if parts[0] == "0000" {
		return
	}
	b.WriteString("  issued:\n    year: " + year + "\n")
	if len(parts) > 1 && parts[1] != "00" {
		b.WriteString("    month: " + parts[1] + "\n")
	}
	if len(parts) > 2 && parts[2] != "00" {
		b.WriteString("    day: " + parts[2] + "\n")
	}
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
