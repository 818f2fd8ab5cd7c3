package reconcile

import (
	"fmt"
	"strings"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

// Matcher resolves a human-supplied player name against the canonical
// store. The cascade runs in strict priority order and the first tier
// that produces a decision wins:
//
//  1. alias-table lookup, restricting the search to the mapped target
//  2. exact name equality
//  3. normalized name equality
//  4. unique last-name token match
//  5. last-name match disambiguated by first initial
//
// Anything still ambiguous after tier 5 fails closed.
type Matcher struct {
	aliases AliasTable
}

func NewMatcher(aliases AliasTable) *Matcher {
	return &Matcher{aliases: aliases}
}

// Match returns the single best candidate or an error wrapping
// ErrNoMatch, ErrAmbiguousMatch, or ErrAliasConflict. Deterministic for
// the same query and candidate slice.
func (m *Matcher) Match(query string, candidates []player.Record) (player.Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return player.Record{}, fmt.Errorf("%w: empty query name", ErrNoMatch)
	}

	if target, ok := m.aliases.Canonical(query); ok {
		return m.matchAlias(query, target, candidates)
	}

	if rec, ok := matchExact(query, candidates); ok {
		return rec, nil
	}
	if rec, ok := matchNormalized(query, candidates); ok {
		return rec, nil
	}

	return matchLastName(query, candidates)
}

// matchAlias resolves the mapped canonical target. When the raw query
// itself already names a different record in the store, the alias is
// mapping one person onto another and is rejected.
func (m *Matcher) matchAlias(query, target string, candidates []player.Record) (player.Record, error) {
	var matched *player.Record
	for i := range candidates {
		if candidates[i].Name == target {
			matched = &candidates[i]
			break
		}
	}
	if matched == nil {
		return player.Record{}, fmt.Errorf("%w: alias target %q not in store", ErrNoMatch, target)
	}

	if direct, ok := matchExact(query, candidates); ok && !player.SameIdentity(direct, *matched) {
		return player.Record{}, fmt.Errorf(
			"%w: %q is already %q, alias points at %q",
			ErrAliasConflict, query, direct.Name, target)
	}

	return *matched, nil
}

func matchExact(query string, candidates []player.Record) (player.Record, bool) {
	for _, rec := range candidates {
		if rec.Name == query {
			return rec, true
		}
	}

	return player.Record{}, false
}

func matchNormalized(query string, candidates []player.Record) (player.Record, bool) {
	normalized := Normalize(query)
	if normalized == "" {
		return player.Record{}, false
	}

	for _, rec := range candidates {
		if Normalize(rec.Name) == normalized {
			return rec, true
		}
	}

	return player.Record{}, false
}

func matchLastName(query string, candidates []player.Record) (player.Record, error) {
	token := lastNameToken(query)
	if token == "" {
		return player.Record{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}

	var hits []player.Record
	for _, rec := range candidates {
		if lastNameToken(rec.Name) == token {
			hits = append(hits, rec)
		}
	}

	switch len(hits) {
	case 0:
		return player.Record{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	case 1:
		return hits[0], nil
	}

	// Multiple surname hits: a first initial can still settle it, but a
	// bare surname query has nothing to break the tie with.
	initial := firstInitial(query)
	if initial == 0 || len(strings.Fields(query)) < 2 {
		return player.Record{}, fmt.Errorf("%w: %d candidates share surname %q", ErrAmbiguousMatch, len(hits), token)
	}

	var narrowed []player.Record
	for _, rec := range hits {
		if firstInitial(rec.Name) == initial {
			narrowed = append(narrowed, rec)
		}
	}
	if len(narrowed) == 1 {
		return narrowed[0], nil
	}

	return player.Record{}, fmt.Errorf("%w: %d candidates share surname %q", ErrAmbiguousMatch, len(hits), token)
}
