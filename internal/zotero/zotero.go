// Package zotero reads the tables of a Zotero sqlite database and exposes
// them as raw per-item rows. Queries run against a private snapshot of the
// source file so Zotero itself never sees a lock from us.
package zotero

// Raw holds the results of one load cycle's read passes. It exists only
// long enough to be merged into normalized entries.
type Raw struct {
	Fields      []FieldRow
	Collections []CollectionRow
	Creators    []CreatorRow
	Types       []TypeRow
	Notes       []NoteRow
	Tags        []TagRow
	Attachments []AttachmentRow
	Deleted     []int
}

// FieldRow is one (item, field, value) triple from itemData.
type FieldRow struct {
	ItemID int
	Key    string // Zotero item key
	Field  string
	Value  string
}

// CollectionRow records that an item is filed under a collection.
type CollectionRow struct {
	ItemID     int
	Collection string
}

// CreatorRow is one creator of an item, ordered by Zotero's orderIndex.
type CreatorRow struct {
	ItemID int
	Role   string // creatorType: author, editor, ...
	Last   string
	First  string
}

// TypeRow is the Zotero type name of an item.
type TypeRow struct {
	ItemID int
	Type   string
}

// NoteRow is a child note attached to an item.
type NoteRow struct {
	ItemID int
	Note   string
}

// TagRow is one tag on an item.
type TagRow struct {
	ItemID int
	Tag    string
}

// AttachmentRow links a parent item to an attachment path. Key is the
// attachment item's own Zotero key.
type AttachmentRow struct {
	ParentID int
	Key      string
	Path     string
}
