package db

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"
)

// cachePragmas are applied by the driver on every new connection
var cachePragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
}

func connection(database string) (*sql.DB, error) {
	params := url.Values{}
	for _, pragma := range cachePragmas {
		params.Add("_pragma", pragma)
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("%s?%s", database, params.Encode()))
	if err != nil {
		return nil, err
	}

	// One connection serialises the cache writes
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	return db, nil
}
