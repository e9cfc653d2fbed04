package database

import (
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver

	"hotelhub/internal/logger"
	"hotelhub/internal/repository"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logger.Get().Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	dsn = sqliteDSN(dsn)
	logger.Get().Info("using SQLite", "dsn", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// sqliteDSN forces _txlock=immediate unless the caller set one. Booking
// creation counts overlaps and then inserts inside one transaction;
// with SQLite's default deferred transactions two such writers both
// take read locks and one fails on the lock upgrade with a busy error.
// Starting immediate takes the write lock up front so they serialize
// instead.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_txlock=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_txlock=immediate"
	}
	return dsn + "?_txlock=immediate"
}

// Migrate applies the schema; the repository's row models own the tables.
func Migrate(db *gorm.DB) error {
	return repository.Migrate(db)
}
