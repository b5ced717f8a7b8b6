// Package reference defines the core domain types for normalized
// bibliographic entries.
package reference

// Creator roles rendered in CSL exports, in their fixed output order.
var CreatorRoles = []string{"author", "editor", "contributor", "translator", "container-author"}

// Creator is one (last name, first name) pair in an entry's creator list.
type Creator struct {
	Last  string
	First string
}

// Entry is one normalized bibliographic record. Entries are built once per
// load cycle and are not mutated afterwards; the CSL exporter works on a
// disposable copy of Fields.
type Entry struct {
	ID         int                  // item id, scoped to one load cycle
	Key        string               // stable key assigned by Zotero
	Citekey    string               // derived human-facing key
	Type       string               // Zotero type name (mapped to CSL on export)
	Year       string               // derived from the date field at normalize time
	Fields     map[string]string    // raw Zotero field names until export
	Creators   map[string][]Creator // role -> creators in stored order
	AuthorLast string               // comma-joined author surnames, for ranking
	Tags       []string
	Attachment string // "parentKey:path", empty if none
	Collection string // "" when the item is unfiled
}
