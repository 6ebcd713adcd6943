package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore persists saved maps as JSONB rows in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and prepares the schema.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %v", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %v", err)
	}
	return store, nil
}

func (s *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		name TEXT PRIMARY KEY,
		seed BIGINT NOT NULL,
		dim INTEGER NOT NULL,
		backend TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		data JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save upserts the map under its name.
func (s *PostgresStore) Save(m *SavedMap) error {
	if err := validName(m.Name); err != nil {
		return err
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map %q: %v", m.Name, err)
	}

	query := `
	INSERT INTO maps (name, seed, dim, backend, fingerprint, data)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (name)
	DO UPDATE SET
		seed = $2, dim = $3, backend = $4, fingerprint = $5, data = $6,
		updated_at = NOW()
	`
	_, err = s.db.Exec(query,
		m.Name, m.Config.Seed, m.Config.Dim, m.Config.Backend,
		m.Fingerprint, string(data))
	if err != nil {
		return fmt.Errorf("failed to save map %q: %v", m.Name, err)
	}
	return nil
}

// Load reads the named map back from the database.
func (s *PostgresStore) Load(name string) (*SavedMap, error) {
	if err := validName(name); err != nil {
		return nil, err
	}

	var data string
	err := s.db.QueryRow(`SELECT data FROM maps WHERE name = $1`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("map %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load map %q: %v", name, err)
	}

	var m SavedMap
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal map %q: %v", name, err)
	}
	return &m, nil
}

// List returns the saved map names in sorted order.
func (s *PostgresStore) List() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM maps ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan map name: %v", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
