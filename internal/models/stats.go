package models

// CompletionStats is the derived per-day completion summary. It is computed
// from the store on demand and never persisted.
type CompletionStats struct {
	Day   string  `json:"day"`
	Done  int     `json:"done"`
	Total int     `json:"total"`
	Pct   float64 `json:"pct"` // 0-100, one decimal
}
