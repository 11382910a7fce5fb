package market

import "sort"

// Table is an immutable view over the reference entries, keyed by location code.
// The set of valid location codes is exactly the keys of this table.
type Table struct {
	entries map[string]Entry
}

// NewTable copies the given entries into an immutable table.
func NewTable(entries map[string]Entry) Table {
	copied := make(map[string]Entry, len(entries))
	for code, entry := range entries {
		copied[code] = entry
	}
	return Table{entries: copied}
}

// DefaultTable returns the built-in reference table.
func DefaultTable() Table {
	return NewTable(builtinEntries)
}

// Get looks up the entry for a location code.
func (t Table) Get(code string) (Entry, bool) {
	entry, ok := t.entries[code]
	return entry, ok
}

// Codes returns all location codes in sorted order.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t.entries))
	for code := range t.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len reports the number of reference locations.
func (t Table) Len() int {
	return len(t.entries)
}
