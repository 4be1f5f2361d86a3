package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability; foreign_keys is required for the
	// equipment -> reminders/service_records cascade.
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaCustomers = `
CREATE TABLE IF NOT EXISTS customers (
    id TEXT PRIMARY KEY,
    first_name TEXT,
    last_name TEXT,
    display_name TEXT NOT NULL,
    mobile_number TEXT,
    home_number TEXT,
    email TEXT,
    company TEXT,
    last_service_date TEXT,
    lifetime_value REAL,
    street1 TEXT NOT NULL,
    street2 TEXT,
    city TEXT,
    state TEXT,
    postal_code TEXT,
    address_notes TEXT,
    full_address TEXT,
    service_frequency TEXT NOT NULL,
    next_service_date TEXT,
    notes TEXT,
    selected_for_route BOOLEAN NOT NULL DEFAULT 0,
    latitude REAL,
    longitude REAL
);
`

const schemaEquipment = `
CREATE TABLE IF NOT EXISTS equipment (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    status TEXT NOT NULL,
    serial_number TEXT,
    purchase_date TEXT,
    purchase_price REAL,
    in_service_date TEXT,
    hours_total REAL NOT NULL DEFAULT 0,
    hours_since_service REAL NOT NULL DEFAULT 0,
    notes TEXT
);
`

const schemaServiceRecords = `
CREATE TABLE IF NOT EXISTS service_records (
    id TEXT PRIMARY KEY,
    equipment_id TEXT NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    service_type TEXT NOT NULL,
    description TEXT,
    cost_parts REAL,
    cost_labor REAL,
    hours_at_service REAL
);
`

const schemaReminders = `
CREATE TABLE IF NOT EXISTS reminders (
    id TEXT PRIMARY KEY,
    equipment_id TEXT NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    due_date TEXT,
    due_hours_since_service REAL,
    last_reset_at_hours REAL
);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaCustomers,
		schemaEquipment,
		schemaServiceRecords,
		schemaReminders,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
