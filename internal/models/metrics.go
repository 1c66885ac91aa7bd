package models

// DailyMetrics holds the self-reported numbers for one day. One row per day,
// upserted on every edit and removed when the day is cleared.
type DailyMetrics struct {
	Day           string  `json:"day"`            // YYYY-MM-DD
	SleepHours    float64 `json:"sleep_hours"`    // 0-16
	Energy        int     `json:"energy"`         // 1-10
	TimeAvailable int     `json:"time_available"` // minutes, 0-300
	Notes         string  `json:"notes"`
}
