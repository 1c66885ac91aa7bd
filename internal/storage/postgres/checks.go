package postgres

import "github.com/mkhurana/reset/internal/models"

func (s *Store) GetChecksForDay(day string) (map[models.CheckKey]bool, error) {
	rows, err := s.db.Query(
		"SELECT section, item, checked FROM checks WHERE day = $1", day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checks := make(map[models.CheckKey]bool)
	for rows.Next() {
		var section, item string
		var checked bool
		if err := rows.Scan(&section, &item, &checked); err != nil {
			return nil, err
		}
		checks[models.CheckKey{Section: section, Item: item}] = checked
	}

	return checks, rows.Err()
}

func (s *Store) UpsertCheck(day, section, item string, checked bool) error {
	_, err := s.db.Exec(`
		INSERT INTO checks (day, section, item, checked)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day, section, item)
		DO UPDATE SET checked = EXCLUDED.checked`,
		day, section, item, checked)

	return err
}
