package keys

import (
	"sort"
	"strings"
)

// EncounterKey produces a canonical key for a list of enemy names.
// Names are trimmed, lower-cased and have spaces replaced by underscores;
// the parts are sorted and joined with "+", so the same roster yields the
// same key regardless of slot order.
func EncounterKey(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		s := strings.TrimSpace(n)
		if s == "" {
			continue
		}
		s = strings.ToLower(strings.Join(strings.Fields(s), "_"))
		parts = append(parts, s)
	}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}
