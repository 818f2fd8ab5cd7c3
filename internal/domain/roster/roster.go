package roster

import (
	"errors"
	"fmt"

	"github.com/aflsquad/statpatch/internal/domain/player"
)

var (
	ErrNotRostered  = errors.New("player is not rostered")
	ErrBenchCaptain = errors.New("captain must be on field")
)

// Bench holds the interchange players grouped by the same position
// buckets as the field, plus the utility slot.
type Bench struct {
	Defenders   []player.Record
	Midfielders []player.Record
	Rucks       []player.Record
	Forwards    []player.Record
	Utility     []player.Record
}

// Roster is a user's team: four on-field position buckets plus the bench.
// Captain references a player by ID and must point at an on-field record.
type Roster struct {
	Defenders   []player.Record
	Midfielders []player.Record
	Rucks       []player.Record
	Forwards    []player.Record
	Bench       Bench
	CaptainID   string
}

// OnField returns every starting-lineup record in bucket order.
func (r Roster) OnField() []player.Record {
	out := make([]player.Record, 0,
		len(r.Defenders)+len(r.Midfielders)+len(r.Rucks)+len(r.Forwards))
	out = append(out, r.Defenders...)
	out = append(out, r.Midfielders...)
	out = append(out, r.Rucks...)
	out = append(out, r.Forwards...)

	return out
}

// All returns every record, field first then bench.
func (r Roster) All() []player.Record {
	out := r.OnField()
	out = append(out, r.Bench.Defenders...)
	out = append(out, r.Bench.Midfielders...)
	out = append(out, r.Bench.Rucks...)
	out = append(out, r.Bench.Forwards...)
	out = append(out, r.Bench.Utility...)

	return out
}

func (r *Roster) fieldBuckets() []*[]player.Record {
	return []*[]player.Record{
		&r.Defenders, &r.Midfielders, &r.Rucks, &r.Forwards,
	}
}

func (r *Roster) benchBuckets() []*[]player.Record {
	return []*[]player.Record{
		&r.Bench.Defenders, &r.Bench.Midfielders, &r.Bench.Rucks,
		&r.Bench.Forwards, &r.Bench.Utility,
	}
}

// Replace walks every bucket and swaps in updated wherever the same
// player currently lives. Legacy roster files carry no record IDs, so
// identity falls back to the stored name. The placement flag follows
// the container, not the incoming record. Returns false when the
// player is not rostered.
func (r *Roster) Replace(updated player.Record) bool {
	replaced := false
	for _, bucket := range r.fieldBuckets() {
		for i := range *bucket {
			if player.SameIdentity((*bucket)[i], updated) {
				updated.IsOnBench = false
				(*bucket)[i] = updated
				replaced = true
			}
		}
	}
	for _, bucket := range r.benchBuckets() {
		for i := range *bucket {
			if player.SameIdentity((*bucket)[i], updated) {
				updated.IsOnBench = true
				(*bucket)[i] = updated
				replaced = true
			}
		}
	}

	return replaced
}

// NormalizePlacement re-derives every record's IsOnBench flag from the
// container that holds it. Store files written by older tooling carry
// stale flags.
func (r *Roster) NormalizePlacement() {
	for _, bucket := range r.fieldBuckets() {
		for i := range *bucket {
			(*bucket)[i].IsOnBench = false
		}
	}
	for _, bucket := range r.benchBuckets() {
		for i := range *bucket {
			(*bucket)[i].IsOnBench = true
		}
	}
}

// SetCaptain marks an on-field player as captain.
func (r *Roster) SetCaptain(playerID string) error {
	for _, rec := range r.OnField() {
		if rec.ID == playerID {
			r.CaptainID = playerID
			return nil
		}
	}
	for _, rec := range r.All() {
		if rec.ID == playerID {
			return fmt.Errorf("%w: %s", ErrBenchCaptain, playerID)
		}
	}

	return fmt.Errorf("%w: %s", ErrNotRostered, playerID)
}
