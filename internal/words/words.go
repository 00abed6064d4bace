package words

import (
	"sort"
	"strings"
)

// Unique splits input on whitespace, drops duplicate words, and returns
// the distinct words in sorted order. An input with no words yields an
// empty result.
func Unique(input string) []string {
	seen := make(map[string]struct{})

	for _, w := range strings.Fields(input) {
		seen[w] = struct{}{}
	}

	unique := make([]string, 0, len(seen))
	for w := range seen {
		unique = append(unique, w)
	}
	sort.Strings(unique)

	return unique
}
