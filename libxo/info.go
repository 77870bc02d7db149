package libxo

import "sort"

// InfoEntry documents one field name for the HTML Info attributes.
type InfoEntry struct {
	Name string
	Type string
	Help string
}

// InfoTable is an immutable, name-sorted table of InfoEntry looked up by
// binary search. Build one with NewInfoTable; the table sorts its own copy
// of the entries, so callers may pass them in any order.
type InfoTable struct {
	entries []InfoEntry
}

// NewInfoTable builds a sorted InfoTable from entries in any order. A nil or
// empty slice produces a usable, always-empty table.
func NewInfoTable(entries []InfoEntry) *InfoTable {
	cp := make([]InfoEntry, len(entries))
	copy(cp, entries)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Name < cp[j].Name })
	return &InfoTable{entries: cp}
}

// Lookup finds the entry for name via binary search, honoring the table's
// sort-by-name invariant.
func (t *InfoTable) Lookup(name string) (InfoEntry, bool) {
	if t == nil {
		return InfoEntry{}, false
	}
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Name >= name })
	if i < len(t.entries) && t.entries[i].Name == name {
		return t.entries[i], true
	}
	return InfoEntry{}, false
}
