package processor

import "sort"

// sortedKeys returns the map keys in lexical order so summary output
// stays deterministic.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
