// Package store provides an optional Postgres-backed dictionary source, an
// alternative to loading a dictionary from a flat file on disk.
package store

import (
	"database/sql"

	_ "github.com/lib/pq"

	spell "github.com/corrigo/spell"
)

// PostgresSource reads dictionary entries from a Postgres table.
type PostgresSource struct {
	db *sql.DB
}

// Open connects to Postgres using dsn (a libpq connection string).
func Open(dsn string) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &PostgresSource{db: db}, nil
}

// Close releases the underlying connection pool.
func (p *PostgresSource) Close() error {
	return p.db.Close()
}

// LoadInto runs query, which must select exactly two columns (term, count),
// and inserts each row into ix via CreateDictionaryEntry.
func (p *PostgresSource) LoadInto(ix *spell.Index, query string) (int, error) {
	rows, err := p.db.Query(query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var term string
		var count int64
		if err := rows.Scan(&term, &count); err != nil {
			return n, err
		}
		ix.CreateDictionaryEntry(term, count)
		n++
	}
	return n, rows.Err()
}
