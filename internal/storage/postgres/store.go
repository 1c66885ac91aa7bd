package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/mkhurana/reset/internal/constants"
)

type Store struct {
	connStr string
	db      *sql.DB
}

func NewStore(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return err
	}

	// Seed reminder defaults if not present
	enabled, err := s.GetSetting(constants.SettingTelegramEnabled, "")
	if err != nil {
		return err
	}
	if enabled == "" {
		if err := s.SetSetting(constants.SettingTelegramEnabled, constants.DefaultTelegramEnabled); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
		if err := s.SetSetting(constants.SettingTelegramReminderTime, constants.DefaultTelegramReminderTime); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	// Postgres has no local file to probe; Load and Init are the same round trip.
	return s.Init()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS checks (
			day TEXT NOT NULL,
			section TEXT NOT NULL,
			item TEXT NOT NULL,
			checked BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (day, section, item)
		)`,
		`CREATE TABLE IF NOT EXISTS daily_metrics (
			day TEXT PRIMARY KEY,
			sleep_hours DOUBLE PRECISION,
			energy INTEGER,
			time_available INTEGER,
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			key TEXT PRIMARY KEY,
			value TEXT
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}
