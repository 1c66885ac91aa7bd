package storage

import "github.com/mkhurana/reset/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Checks
	GetChecksForDay(day string) (map[models.CheckKey]bool, error)
	UpsertCheck(day, section, item string, checked bool) error

	// Daily metrics
	// GetMetrics returns (nil, nil) when no row exists for the day; absent
	// metrics are not an error.
	GetMetrics(day string) (*models.DailyMetrics, error)
	UpsertMetrics(m models.DailyMetrics) error

	// ResetDay deletes all checks and metrics for one day. Resetting an
	// already-empty day is a no-op.
	ResetDay(day string) error

	// FirstRecordedDay returns the earliest day with any recorded data
	// across checks and metrics, or "" when nothing has been recorded.
	FirstRecordedDay() (string, error)

	// Settings
	GetSetting(key, fallback string) (string, error)
	SetSetting(key, value string) error

	// Utils
	GetConfigPath() string
}
