package reconcile

import "errors"

var (
	// ErrNoMatch means no canonical record could be identified for the
	// query name. Callers must log and skip, never invent a record.
	ErrNoMatch = errors.New("no matching player record")

	// ErrAmbiguousMatch means more than one candidate survived the
	// cascade with no tie-break left. Treated exactly like no-match:
	// fail closed, do not guess.
	ErrAmbiguousMatch = errors.New("ambiguous player match")

	// ErrAliasConflict means an alias entry maps a name that already
	// identifies a different canonical record. Those mappings are data
	// bugs and are rejected rather than applied.
	ErrAliasConflict = errors.New("alias maps over an existing player")
)
