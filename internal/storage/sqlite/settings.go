package sqlite

import "database/sql"

func (s *Store) GetSetting(key, fallback string) (string, error) {
	var value sql.NullString
	err := s.db.QueryRow(
		"SELECT value FROM app_settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	if !value.Valid {
		return fallback, nil
	}
	return value.String, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_settings (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
