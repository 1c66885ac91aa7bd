package storage

import (
	"net/url"
	"strings"

	"github.com/mkhurana/reset/internal/storage/postgres"
	"github.com/mkhurana/reset/internal/storage/sqlite"
)

// NewSQLiteStore returns a Provider backed by a local SQLite file.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore returns a Provider backed by PostgreSQL.
func NewPostgresStore(connStr string) Provider {
	return postgres.NewStore(connStr)
}

// IsPostgresConnString reports whether the config argument looks like a
// PostgreSQL connection string rather than a file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Credentials belong in the environment or .pgpass,
// not on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}
