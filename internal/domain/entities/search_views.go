package entities

import "time"

// TopTerm is one entry of the global most-searched-terms ranking, derived
// from the event log on every read.
type TopTerm struct {
	Term  string `json:"term" db:"term"`
	Count int64  `json:"count" db:"count"`
}

// HistoryEntry is a projection of one of a user's own search events.
type HistoryEntry struct {
	Term      string    `json:"term"`
	Timestamp time.Time `json:"timestamp"`
}
