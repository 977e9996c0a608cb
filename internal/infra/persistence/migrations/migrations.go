// Package migrations applies the embedded schema with golang-migrate.
package migrations

import (
	"embed"

	"jobboard/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

//go:embed sql/*.sql
var schemaFS embed.FS

// ErrNoChange is returned by golang-migrate when the schema is already at the target version.
var ErrNoChange = migrate.ErrNoChange

// Run migrates the database behind dsn. Already being at the target version is not an error.
func Run(dsn, direction string) error {
	if dsn == "" {
		return errors.New("migration dsn is not set")
	}
	if direction != DirectionUp && direction != DirectionDown {
		return errors.Errorf("direction must be up or down, got %q", direction)
	}

	sourceDriver, err := iofs.New(schemaFS, "sql")
	if err != nil {
		return errors.Wrap(err, "migrate source")
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return errors.Wrap(err, "migrate")
	}
	defer func() { _, _ = m.Close() }()

	if direction == DirectionUp {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrapf(err, "migrate %s", direction)
	}

	return nil
}

// Files lists the embedded migration file names.
func Files() ([]string, error) {
	entries, err := schemaFS.ReadDir("sql")
	if err != nil {
		return nil, errors.Wrap(err, "read embedded migrations")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}
