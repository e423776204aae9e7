// Package maputil holds helpers for maps keyed by name.
package maputil

import "sort"

// SortedKeys returns the keys of m in ascending order. A nil map yields an
// empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
