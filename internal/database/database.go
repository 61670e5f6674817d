package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenSource connects to the operational MySQL database (read-only from the
// pipeline's point of view).
func OpenSource(dsn string) (*sql.DB, error) {
	return open("mysql", dsn)
}

// OpenWarehouse connects to the analytical Postgres database.
func OpenWarehouse(dsn string) (*sql.DB, error) {
	return open("pgx", dsn)
}

func open(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging %s database: %w", driver, err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
