package reconcile

import (
	"fmt"
	"strings"
)

// AliasTable maps known-bad human-entered names to their canonical
// spelling. It is loaded once from configuration and injected into the
// matcher rather than re-declared per correction batch.
type AliasTable struct {
	exact      map[string]string
	normalized map[string]string
}

// NewAliasTable builds the lookup indexes. Two entries whose keys
// normalize to the same form but point at different targets are a
// data-entry bug and are rejected up front.
func NewAliasTable(entries map[string]string) (AliasTable, error) {
	t := AliasTable{
		exact:      make(map[string]string, len(entries)),
		normalized: make(map[string]string, len(entries)),
	}

	for key, target := range entries {
		key = strings.TrimSpace(key)
		target = strings.TrimSpace(target)
		if key == "" || target == "" {
			return AliasTable{}, fmt.Errorf("alias entry %q -> %q: empty side", key, target)
		}

		norm := Normalize(key)
		if existing, ok := t.normalized[norm]; ok && existing != target {
			return AliasTable{}, fmt.Errorf(
				"alias entries for %q disagree: %q vs %q", key, existing, target)
		}

		t.exact[key] = target
		t.normalized[norm] = target
	}

	return t, nil
}

// Len reports the number of distinct entries.
func (t AliasTable) Len() int {
	return len(t.exact)
}

// Canonical resolves query through the table. Lookup is trimmed-exact
// first, then normalized, so entry keys keep their original spelling.
func (t AliasTable) Canonical(query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if target, ok := t.exact[trimmed]; ok {
		return target, true
	}
	if target, ok := t.normalized[Normalize(trimmed)]; ok {
		return target, true
	}

	return "", false
}
