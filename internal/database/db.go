package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection. The returned
// handle is the process-wide pool injected into every repository at
// startup; callers own its Close.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	// clientFoundRows=true -> RowsAffected counts matched rows, so a PUT
	// that resends identical values still reports the row as found
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&clientFoundRows=true",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the three entity tables if they do not exist.
// Reservations intentionally declare no foreign keys: deleting a guest
// or room leaves dangling references rather than failing or cascading,
// and dangling references must stay representable.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS guests (
			id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name          VARCHAR(255) NOT NULL,
			email         VARCHAR(255) NULL,
			phone         VARCHAR(64)  NULL,
			custom_fields TEXT         NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id     BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			number VARCHAR(32) NOT NULL,
			type   VARCHAR(32) NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'available',
			price  DECIMAL(10,2) NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			id        BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			guest_id  BIGINT UNSIGNED NOT NULL,
			room_id   BIGINT UNSIGNED NOT NULL,
			check_in  VARCHAR(10) NOT NULL,
			check_out VARCHAR(10) NOT NULL,
			status    VARCHAR(16) NOT NULL DEFAULT 'active'
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
