package reference

import "sort"

// Index is the in-memory store of entries grouped by collection name.
// It is replaced wholesale on reload, never patched incrementally.
//
// Iteration order is deterministic: collection names sorted, entries within
// a collection sorted by item id. The unfiled bucket (empty name) takes part
// like any other collection.
type Index struct {
	collections map[string][]*Entry
	names       []string
}

// NewIndex builds an index from entries already bucketed by collection.
func NewIndex(byCollection map[string][]*Entry) *Index {
	names := make([]string, 0, len(byCollection))
	for name, entries := range byCollection {
		sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
		names = append(names, name)
	}
	sort.Strings(names)
	return &Index{collections: byCollection, names: names}
}

// CollectionNames returns all collection names in sorted order.
func (x *Index) CollectionNames() []string {
	return x.names
}

// HasCollection reports whether a collection name exists in the index.
func (x *Index) HasCollection(name string) bool {
	_, ok := x.collections[name]
	return ok
}

// Collection returns the entries of one collection in id order.
func (x *Index) Collection(name string) []*Entry {
	return x.collections[name]
}

// All calls fn for every entry in collection-then-id order.
// Iteration stops early if fn returns false.
func (x *Index) All(fn func(*Entry) bool) {
	for _, name := range x.names {
		for _, e := range x.collections[name] {
			if !fn(e) {
				return
			}
		}
	}
}

// Counts returns the number of entries per collection.
func (x *Index) Counts() map[string]int {
	counts := make(map[string]int, len(x.collections))
	for name, entries := range x.collections {
		counts[name] = len(entries)
	}
	return counts
}
