package sqlite

import (
	"database/sql"
	"strings"

	"github.com/mkhurana/reset/internal/models"
)

func (s *Store) GetMetrics(day string) (*models.DailyMetrics, error) {
	row := s.db.QueryRow(`
		SELECT sleep_hours, energy, time_available, notes
		FROM daily_metrics WHERE day = ?`, day)

	m := models.DailyMetrics{Day: day}
	var sleepHours sql.NullFloat64
	var energy, timeAvailable sql.NullInt64
	var notes sql.NullString

	err := row.Scan(&sleepHours, &energy, &timeAvailable, &notes)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if sleepHours.Valid {
		m.SleepHours = sleepHours.Float64
	}
	if energy.Valid {
		m.Energy = int(energy.Int64)
	}
	if timeAvailable.Valid {
		m.TimeAvailable = int(timeAvailable.Int64)
	}
	if notes.Valid {
		m.Notes = notes.String
	}

	return &m, nil
}

func (s *Store) UpsertMetrics(m models.DailyMetrics) error {
	_, err := s.db.Exec(`
		INSERT INTO daily_metrics (day, sleep_hours, energy, time_available, notes)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day)
		DO UPDATE SET
			sleep_hours = excluded.sleep_hours,
			energy = excluded.energy,
			time_available = excluded.time_available,
			notes = excluded.notes`,
		m.Day, m.SleepHours, m.Energy, m.TimeAvailable, strings.TrimSpace(m.Notes))

	return err
}

func (s *Store) ResetDay(day string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM checks WHERE day = ?", day); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM daily_metrics WHERE day = ?", day); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) FirstRecordedDay() (string, error) {
	var first sql.NullString
	err := s.db.QueryRow(`
		SELECT MIN(day) FROM (
			SELECT day FROM checks
			UNION ALL
			SELECT day FROM daily_metrics
		)`).Scan(&first)
	if err != nil {
		return "", err
	}
	if !first.Valid {
		return "", nil
	}
	return first.String, nil
}
