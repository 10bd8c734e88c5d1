package models

// DefaultBudget is the monthly budget assigned to a profile that has
// never set one.
const DefaultBudget = 8000000

// HistoryPoint is a net-worth snapshot. The history series is append-only
// and produced outside this core; it is carried as a read-only passthrough.
type HistoryPoint struct {
	Date string  `json:"date"`
	Val  float64 `json:"val"`
}

// Profile is the single authoritative document holding the full asset
// list, net-worth history, and budget for the one supported user.
type Profile struct {
	Assets  []Asset        `json:"assets"`
	History []HistoryPoint `json:"history"`
	Budget  float64        `json:"budget"`
}

// ProfilePatch is a partial profile for merge-upserts. Nil fields are
// omitted from the write and left untouched server-side, so a partial
// write never clobbers concurrently-written unrelated fields.
type ProfilePatch struct {
	Assets  []Asset        `json:"assets,omitempty"`
	History []HistoryPoint `json:"history,omitempty"`
	Budget  *float64       `json:"budget,omitempty"`
}
