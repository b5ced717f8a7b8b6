package library

import (
	"strings"

	"github.com/matsen/zotref/internal/reference"
)

// Relevance tiers, checked per entry in this order; the first match wins so
// an entry never appears twice even when several criteria hold.
const (
	tierCitekeyPrefix = iota
	tierAuthorPrefix
	tierTitlePrefix
	tierCitekeyContains
	tierAuthorContains
	tierTitleContains
	tierCount
)

// searchIndex scans the given collections for entries matching the
// lowercase pattern and returns completion lines, tier by tier. Within a
// tier the collection-then-id storage order is preserved.
func searchIndex(index *reference.Index, collections []string, pattern string) []string {
	var tiers [tierCount][]string
	for _, c := range collections {
		for _, e := range index.Collection(c) {
			ck := strings.Index(strings.ToLower(e.Citekey), pattern)
			al := -1
			if e.AuthorLast != "" {
				al = strings.Index(strings.ToLower(e.AuthorLast), pattern)
			}
			ti := strings.Index(strings.ToLower(e.Fields["title"]), pattern)

			switch {
			case ck == 0:
				tiers[tierCitekeyPrefix] = append(tiers[tierCitekeyPrefix], CompletionLine(e))
			case al == 0:
				tiers[tierAuthorPrefix] = append(tiers[tierAuthorPrefix], CompletionLine(e))
			case ti == 0:
				tiers[tierTitlePrefix] = append(tiers[tierTitlePrefix], CompletionLine(e))
			case ck > 0:
				tiers[tierCitekeyContains] = append(tiers[tierCitekeyContains], CompletionLine(e))
			case al > 0:
				tiers[tierAuthorContains] = append(tiers[tierAuthorContains], CompletionLine(e))
			case ti > 0:
				tiers[tierTitleContains] = append(tiers[tierTitleContains], CompletionLine(e))
			}
		}
	}

	var lines []string
	for _, t := range tiers {
		lines = append(lines, t...)
	}
	return lines
}

// CompletionLine formats one search result for editor autocompletion:
// key#citekey, author surnames (a single space when there are none), and
// "(year) title", tab-separated.
func CompletionLine(e *reference.Entry) string {
	authors := e.AuthorLast
	if authors == "" {
		authors = " "
	}
	return e.Key + "#" + e.Citekey + "\t" + authors + "\t(" + e.Year + ") " + e.Fields["title"]
}
