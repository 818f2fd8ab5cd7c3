package reconcile

import "errors"

// OutcomeStatus classifies one attempted correction.
type OutcomeStatus string

const (
	OutcomeMatched       OutcomeStatus = "matched"
	OutcomeUnmatched     OutcomeStatus = "unmatched"
	OutcomeAmbiguous     OutcomeStatus = "ambiguous"
	OutcomeAliasConflict OutcomeStatus = "alias_conflict"
)

// Outcome records what happened to a single correction so callers can
// aggregate a report instead of scraping log output.
type Outcome struct {
	Query       string        `json:"query"`
	Status      OutcomeStatus `json:"status"`
	MatchedID   string        `json:"matched_id,omitempty"`
	MatchedName string        `json:"matched_name,omitempty"`
	Detail      string        `json:"detail,omitempty"`
}

// ClassifyMatchError maps a matcher error onto an outcome status.
func ClassifyMatchError(err error) OutcomeStatus {
	switch {
	case errors.Is(err, ErrAliasConflict):
		return OutcomeAliasConflict
	case errors.Is(err, ErrAmbiguousMatch):
		return OutcomeAmbiguous
	default:
		return OutcomeUnmatched
	}
}
