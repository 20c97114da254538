package session

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // Postgres driver
)

// PostgresStore implements Store on a shared Postgres database, for
// operators who keep credentials off the local disk.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the DSN and applies migrations.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS credentials (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Get returns the stored value, or "" when the key is absent.
func (s *PostgresStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set inserts or replaces the value for key.
func (s *PostgresStore) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO credentials (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

// Delete removes the key; deleting an absent key is not an error.
func (s *PostgresStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE key = $1`, key)
	return err
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
