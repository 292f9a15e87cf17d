package source

import (
	"sort"

	"golang.org/x/text/unicode/norm"
)

// normalizeName folds a name to NFC so that names read from file systems that
// store decomposed forms sort the same as everywhere else.
func normalizeName(name string) string {
	return norm.NFC.String(name)
}

// SortEntries orders entries by normalized name, breaking ties by raw name.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := normalizeName(entries[i].Name), normalizeName(entries[j].Name)
		if a != b {
			return a < b
		}
		return entries[i].Name < entries[j].Name
	})
}
