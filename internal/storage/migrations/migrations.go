package migrations

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Up applies every pending migration and reports the schema version before
// and after.
func Up(db *sql.DB) (preVersion, postVersion uint, err error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return 0, 0, err
	}

	source, err := iofs.New(files, "sql")
	if err != nil {
		return 0, 0, err
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return 0, 0, err
	}

	preVersion, _, err = m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		preVersion = 0
	} else if err != nil {
		return 0, 0, err
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return preVersion, 0, err
	}

	postVersion, _, err = m.Version()
	if err != nil {
		return preVersion, 0, err
	}

	return preVersion, postVersion, nil
}
