package constants

const (
	AppName            = "reset"
	DefaultKeyringUser = "telegram-bot-token"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// StreakThresholdPct is the completion percentage a day must reach to count
	// toward the current streak.
	StreakThresholdPct = 70.0

	// History windows shown by the insights views: a condensed chart over
	// HistoryChartDays and a per-day table over HistoryTableDays.
	HistoryChartDays = 60
	HistoryTableDays = 14

	// Metric input bounds.
	SleepHoursMax    = 16.0
	EnergyMin        = 1
	EnergyMax        = 10
	TimeAvailableMax = 300

	// Display defaults for unrecorded metrics.
	DefaultSleepHours    = 7.5
	DefaultEnergy        = 6
	DefaultTimeAvailable = 45
)
