package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/neonshop/commerce-core/pkg/metrics"
)

// PostgresStore keeps each collection as one jsonb document, preserving
// the whole-collection load/save contract of the file store. It exists
// so deployments can trade the single-writer flat file for a server
// database without touching the query layer.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an open connection. Call EnsureSchema once
// before first use.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the collections table if it does not exist.
func (s *PostgresStore) EnsureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name       text PRIMARY KEY,
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("%w: ensure schema: %v", ErrUnavailable, err)
	}
	return nil
}

// Load decodes the named collection document. An absent row is an empty
// collection.
func (s *PostgresStore) Load(collection string, dest any) error {
	var data []byte
	err := s.db.QueryRow(
		`SELECT data FROM collections WHERE name = $1`, collection,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: load collection %s: %v", ErrUnavailable, collection, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: decode collection %s: %v", ErrUnavailable, collection, err)
	}
	return nil
}

// Save upserts the whole collection document.
func (s *PostgresStore) Save(collection string, data any) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: encode collection %s: %v", ErrUnavailable, collection, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO collections (name, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		collection, encoded,
	)
	if err != nil {
		metrics.StoreWrites.WithLabelValues(collection, metrics.StatusError).Inc()
		return fmt.Errorf("%w: save collection %s: %v", ErrUnavailable, collection, err)
	}

	metrics.StoreWrites.WithLabelValues(collection, metrics.StatusOK).Inc()
	return nil
}
