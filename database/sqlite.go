package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// schema is applied statement by statement on every Open; all statements
// are idempotent. The two triggers keep users.updated_at a derived
// attribute: it refreshes on any direct user update and whenever a scan
// referencing the user is inserted.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		phone TEXT,
		badge_code TEXT UNIQUE,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		category TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		activity_id INTEGER NOT NULL,
		scanned_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users (id),
		FOREIGN KEY (activity_id) REFERENCES activities (id)
	)`,
	`CREATE TRIGGER IF NOT EXISTS update_user_timestamp
	AFTER UPDATE ON users
	BEGIN
		UPDATE users SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.id;
	END`,
	`CREATE TRIGGER IF NOT EXISTS update_user_timestamp_on_scan
	AFTER INSERT ON scans
	BEGIN
		UPDATE users SET updated_at = CURRENT_TIMESTAMP WHERE id = NEW.user_id;
	END`,
}

// Open connects to the SQLite database at path (":memory:" works for
// tests), applies the schema and returns the process-wide handle.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// One connection: SQLite serializes writers anyway, and a single
	// shared connection keeps :memory: databases alive across requests.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("Connected to SQLite database: %s", path)
	return db, nil
}

// InitSchema creates tables and triggers if they do not exist yet.
func InitSchema(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}
	return nil
}
