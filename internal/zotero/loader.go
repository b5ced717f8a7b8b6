package zotero

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Load copies the database at path into cacheDir, runs the read passes
// against the copy, and removes the copy before returning. The source file
// is never opened by the sqlite driver.
func Load(path, cacheDir string) (*Raw, error) {
	copyPath, cleanup, err := snapshot(path, cacheDir)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	db, err := sql.Open("sqlite", copyPath)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	raw := &Raw{}
	passes := []struct {
		name string
		run  func(*sql.DB, *Raw) error
	}{
		{"fields", loadFields},
		{"collections", loadCollections},
		{"creators", loadCreators},
		{"types", loadTypes},
		{"notes", loadNotes},
		{"tags", loadTags},
		{"attachments", loadAttachments},
		{"deleted items", loadDeleted},
	}
	for _, p := range passes {
		if err := p.run(db, raw); err != nil {
			return nil, fmt.Errorf("reading %s: %w", p.name, err)
		}
	}

	return raw, nil
}

func loadFields(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`
		SELECT items.itemID, items.key, fields.fieldName, itemDataValues.value
		FROM items
		JOIN itemData ON items.itemID = itemData.itemID
		JOIN fields ON itemData.fieldID = fields.fieldID
		JOIN itemDataValues ON itemData.valueID = itemDataValues.valueID`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r FieldRow
		if err := rows.Scan(&r.ItemID, &r.Key, &r.Field, &r.Value); err != nil {
			return err
		}
		raw.Fields = append(raw.Fields, r)
	}
	return rows.Err()
}

func loadCollections(db *sql.DB, raw *Raw) error {
	// No ordering here: the normalizer applies the collection preference
	// explicitly instead of relying on row order.
	rows, err := db.Query(`
		SELECT collectionItems.itemID, collections.collectionName
		FROM collections
		JOIN collectionItems ON collections.collectionID = collectionItems.collectionID`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r CollectionRow
		if err := rows.Scan(&r.ItemID, &r.Collection); err != nil {
			return err
		}
		raw.Collections = append(raw.Collections, r)
	}
	return rows.Err()
}

func loadCreators(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`
		SELECT itemCreators.itemID, creatorTypes.creatorType,
			creators.lastName, creators.firstName
		FROM itemCreators
		JOIN creators ON itemCreators.creatorID = creators.creatorID
		JOIN creatorTypes ON itemCreators.creatorTypeID = creatorTypes.creatorTypeID
		ORDER BY itemCreators.orderIndex`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r CreatorRow
		if err := rows.Scan(&r.ItemID, &r.Role, &r.Last, &r.First); err != nil {
			return err
		}
		raw.Creators = append(raw.Creators, r)
	}
	return rows.Err()
}

func loadTypes(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`
		SELECT items.itemID, itemTypes.typeName
		FROM items
		JOIN itemTypes ON items.itemTypeID = itemTypes.itemTypeID`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r TypeRow
		if err := rows.Scan(&r.ItemID, &r.Type); err != nil {
			return err
		}
		raw.Types = append(raw.Types, r)
	}
	return rows.Err()
}

func loadNotes(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`
		SELECT itemNotes.parentItemID, itemNotes.note
		FROM itemNotes
		WHERE itemNotes.parentItemID IS NOT NULL`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r NoteRow
		if err := rows.Scan(&r.ItemID, &r.Note); err != nil {
			return err
		}
		raw.Notes = append(raw.Notes, r)
	}
	return rows.Err()
}

func loadTags(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`
		SELECT itemTags.itemID, tags.name
		FROM tags
		JOIN itemTags ON tags.tagID = itemTags.tagID`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r TagRow
		if err := rows.Scan(&r.ItemID, &r.Tag); err != nil {
			return err
		}
		raw.Tags = append(raw.Tags, r)
	}
	return rows.Err()
}

func loadAttachments(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`
		SELECT items.key, itemAttachments.parentItemID, itemAttachments.path
		FROM items
		JOIN itemAttachments ON items.itemID = itemAttachments.itemID
		WHERE itemAttachments.parentItemID IS NOT NULL
			AND itemAttachments.path IS NOT NULL`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var r AttachmentRow
		if err := rows.Scan(&r.Key, &r.ParentID, &r.Path); err != nil {
			return err
		}
		raw.Attachments = append(raw.Attachments, r)
	}
	return rows.Err()
}

func loadDeleted(db *sql.DB, raw *Raw) error {
	rows, err := db.Query(`SELECT itemID FROM deletedItems`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return err
		}
		raw.Deleted = append(raw.Deleted, id)
	}
	return rows.Err()
}
