package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// MemoryPath keeps the sample data in memory for the life of the process
const MemoryPath = ":memory:"

var DB *sql.DB

// driver is the driver DB was opened with
var driver = DriverSQLite

// Config selects the store backing the sample data
type Config struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"` // SQLite file, or :memory:
	URL    string `yaml:"url"`  // Postgres connection string
}

// Open opens a database handle for the given config without touching the
// package-level DB
func Open(cfg Config) (*sql.DB, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return openSQLite(cfg.Path)
	case DriverPostgres:
		return openPostgres(cfg.URL)
	}
	return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
}

// InitDB opens the configured store and makes it the package-level DB
func InitDB(cfg Config) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}

	DB = db
	driver = cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	log.Info().Str("driver", driver).Msg("Database connection established")
	return nil
}

// Use swaps the package-level DB, mainly for tests
func Use(db *sql.DB, driverName string) {
	DB = db
	driver = driverName
}

// Driver returns the driver name of the package-level DB
func Driver() string {
	return driver
}

func openSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}

	dsn := path
	if path != MemoryPath {
		// Add connection parameters to better handle concurrency
		dsn = path + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	}

	db, err := sql.Open(DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if path == MemoryPath {
		// Every connection to :memory: is a separate database, so pin the
		// pool to one connection that never expires
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(time.Minute * 5)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	return db, nil
}

func openPostgres(url string) (*sql.DB, error) {
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", DriverPostgres)
	}

	db, err := sql.Open(DriverPostgres, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres database: %w", err)
	}

	return db, nil
}

// Rebind rewrites ? placeholders into the style of the package-level driver
func Rebind(query string) string {
	return RebindFor(driver, query)
}

// RebindFor rewrites ? placeholders into $1, $2, ... for Postgres and leaves
// SQLite queries as they are. Queries must not contain literal question marks.
func RebindFor(driverName, query string) string {
	if driverName != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
