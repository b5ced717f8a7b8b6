package library

import (
	"strings"

	"github.com/matsen/zotref/internal/citekey"
	"github.com/matsen/zotref/internal/reference"
	"github.com/matsen/zotref/internal/zotero"
)

// DefaultShelf is Zotero's staging collection. When an item is filed both
// here and elsewhere, the other collection wins.
const DefaultShelf = "To Read"

// Normalize merges the raw read-pass rows into one entry per item and
// buckets the survivors by collection. Deleted items and attachment items
// are dropped; everything else keeps well-defined defaults for missing
// title, date, and creators.
func Normalize(raw *zotero.Raw, gen *citekey.Generator) *reference.Index {
	items := make(map[int]*reference.Entry)

	// Field/value pairs seed one record per item.
	for _, r := range raw.Fields {
		e, ok := items[r.ItemID]
		if !ok {
			e = &reference.Entry{
				ID:       r.ItemID,
				Key:      r.Key,
				Fields:   make(map[string]string),
				Creators: make(map[string][]reference.Creator),
			}
			items[r.ItemID] = e
		}
		e.Fields[r.Field] = r.Value
	}

	memberships := make(map[int][]string)
	for _, r := range raw.Collections {
		if _, ok := items[r.ItemID]; ok {
			memberships[r.ItemID] = append(memberships[r.ItemID], r.Collection)
		}
	}
	for id, names := range memberships {
		items[id].Collection = pickCollection(names)
	}

	for _, r := range raw.Creators {
		e, ok := items[r.ItemID]
		if !ok {
			continue
		}
		e.Creators[r.Role] = append(e.Creators[r.Role], reference.Creator{Last: r.Last, First: r.First})
		if r.Role == "author" {
			e.AuthorLast += ", " + r.Last
		}
	}

	for _, r := range raw.Types {
		if e, ok := items[r.ItemID]; ok {
			e.Type = r.Type
		}
	}
	for _, r := range raw.Notes {
		if e, ok := items[r.ItemID]; ok {
			e.Fields["note"] = r.Note
		}
	}
	for _, r := range raw.Tags {
		if e, ok := items[r.ItemID]; ok {
			e.Tags = append(e.Tags, r.Tag)
		}
	}
	for _, r := range raw.Attachments {
		if e, ok := items[r.ParentID]; ok {
			e.Attachment = r.Key + ":" + r.Path
		}
	}

	deleted := make(map[int]bool, len(raw.Deleted))
	for _, id := range raw.Deleted {
		deleted[id] = true
	}

	byCollection := make(map[string][]*reference.Entry)
	for id, e := range items {
		if deleted[id] || e.Type == "attachment" {
			continue
		}
		e.AuthorLast = strings.TrimPrefix(e.AuthorLast, ", ")
		e.Year = citekey.Year(e.Fields["date"])
		var lastname string
		if authors := e.Creators["author"]; len(authors) > 0 {
			lastname = authors[0].Last
		}
		e.Citekey = gen.Make(lastname, e.Fields["date"], e.Fields["title"])
		byCollection[e.Collection] = append(byCollection[e.Collection], e)
	}

	return reference.NewIndex(byCollection)
}

// pickCollection chooses the single collection an entry is filed under:
// any collection other than DefaultShelf is preferred, and among several
// the greatest name wins. The choice is deterministic regardless of row
// order.
func pickCollection(names []string) string {
	best := ""
	for _, n := range names {
		if n == DefaultShelf {
			if best == "" {
				best = n
			}
			continue
		}
		if best == "" || best == DefaultShelf || n > best {
			best = n
		}
	}
	return best
}
