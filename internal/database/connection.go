package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. DB_TYPE selects the
// driver: "postgres" uses DATABASE_URL, anything else falls back to a local
// SQLite file (DATABASE_PATH, default data/limudbot.db).
func Connect() error {
	if os.Getenv("DB_TYPE") == "postgres" {
		db, err := sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %v", err)
		}
		DB = db
		return initializeSchema()
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dataDir := "data"
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dataDir, "limudbot.db")
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %v", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	DB = db
	return initializeSchema()
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			telegram_id INTEGER PRIMARY KEY,
			username TEXT,
			first_name TEXT,
			last_name TEXT,
			is_admin BOOLEAN DEFAULT false,
			notification_enabled BOOLEAN DEFAULT true,
			notification_hour INTEGER DEFAULT 9,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %v", err)
	}

	// Ordered lists and the exception lists live in JSON text columns; the
	// repository defaults absent lists to empty slices on load so rows written
	// before those columns existed keep working.
	_, err = DB.Exec(`
		CREATE TABLE IF NOT EXISTS learning_plans (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			masechet_ids TEXT NOT NULL,
			plan_name TEXT NOT NULL,
			mode TEXT NOT NULL,
			unit TEXT NOT NULL,
			frequency TEXT NOT NULL,
			target_date TEXT,
			amount_per_day INTEGER DEFAULT 0,
			calculated_amount_per_day INTEGER DEFAULT 1,
			total_units INTEGER DEFAULT 0,
			estimated_end_date TEXT,
			distribution TEXT,
			current_position INTEGER DEFAULT 0,
			completed_dates TEXT,
			last_learning_date TEXT,
			is_completed BOOLEAN DEFAULT false,
			skipped_chapters TEXT,
			pre_learned_chapters TEXT,
			FOREIGN KEY (user_id) REFERENCES users(telegram_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create learning_plans table: %v", err)
	}

	return nil
}
