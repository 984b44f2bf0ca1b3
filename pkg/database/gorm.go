package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pragmas applied to every SQLite connection. WAL keeps readers off the writer's
// lock; synchronous=FULL makes a commit durable before Exec returns.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = FULL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

func getLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true, // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true, // Don't include params in the SQL log
			Colorful:                  true,
		},
	)
}

// IsPostgresDSN reports whether dsn targets postgres rather than a local SQLite file.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

func configureConnectionPool(db *gorm.DB, postgresPool bool) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if !postgresPool {
		// SQLite allows a single writer; one connection serializes every
		// write in the process instead of surfacing SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		return nil
	}

	// SetMaxIdleConns sets the maximum number of connections in the idle connection pool.
	sqlDB.SetMaxIdleConns(10)

	// SetMaxOpenConns sets the maximum number of open connections to the database.
	sqlDB.SetMaxOpenConns(100)

	// SetConnMaxLifetime sets the maximum amount of time a connection may be reused.
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

func applySQLitePragmas(db *gorm.DB) error {
	for _, stmt := range sqlitePragmas {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return nil
}

func open(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database connection string is empty")
	}

	isPostgres := IsPostgresDSN(dsn)

	var dialector gorm.Dialector
	if isPostgres {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: getLogger(level),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, isPostgres); err != nil {
		return nil, err
	}

	if !isPostgres {
		if err := applySQLitePragmas(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// NewGormDBFromDSN opens postgres for URL/keyword DSNs and a SQLite file otherwise.
func NewGormDBFromDSN(dsn string) (*gorm.DB, error) {
	return open(dsn, logger.Warn)
}

// NewQuietGormDB is NewGormDBFromDSN with SQL logging silenced, for tests and tools.
func NewQuietGormDB(dsn string) (*gorm.DB, error) {
	return open(dsn, logger.Silent)
}
