package sqlite

import "github.com/mkhurana/reset/internal/models"

func (s *Store) GetChecksForDay(day string) (map[models.CheckKey]bool, error) {
	rows, err := s.db.Query(
		"SELECT section, item, checked FROM checks WHERE day = ?", day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := make(map[models.CheckKey]bool)
	for rows.Next() {
		var section, item string
		var checked int
		if err := rows.Scan(&section, &item, &checked); err != nil {
			return nil, err
		}
		checks[models.CheckKey{Section: section, Item: item}] = checked != 0
	}

	return checks, rows.Err()
}

func (s *Store) UpsertCheck(day, section, item string, checked bool) error {
	state := 0
	if checked {
		state = 1
	}

	_, err := s.db.Exec(`
		INSERT INTO checks (day, section, item, checked)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day, section, item)
		DO UPDATE SET checked = excluded.checked`,
		day, section, item, state)

	return err
}
