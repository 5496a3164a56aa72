package record

import "time"

// Filter selects a subset of game records. The zero value matches
// every record.
type Filter struct {
	// From and To bound the game date, inclusive. A zero bound is open.
	From time.Time
	To   time.Time

	// Side restricts to games played as one color.
	// SideUnknown means both sides.
	Side Side
}

// Match reports whether the record passes the filter.
func (f Filter) Match(r GameRecord) bool {
	if !f.From.IsZero() && r.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && r.Date.After(f.To) {
		return false
	}
	if f.Side != SideUnknown && r.Side != f.Side {
		return false
	}
	return true
}

// Apply returns the records that pass the filter, preserving order.
func (f Filter) Apply(records []GameRecord) []GameRecord {
	if f == (Filter{}) {
		return records
	}
	out := make([]GameRecord, 0, len(records))
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
