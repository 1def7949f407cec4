package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// SQLiteStore implements ServiceStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates a SQLite database at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS services (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_fr TEXT,
		description_en TEXT,
		description_fr TEXT,
		category TEXT NOT NULL,
		verification INTEGER NOT NULL DEFAULT 0,
		identity_tags TEXT,
		synthetic_queries TEXT,
		lat REAL,
		lng REAL,
		embedding TEXT,
		last_verified TIMESTAMP,
		hours TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_services_category ON services(category);
	CREATE INDEX IF NOT EXISTS idx_services_created_at ON services(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// PutService inserts or replaces a service. A missing ID is assigned a UUID.
func (s *SQLiteStore) PutService(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	now := time.Now()
	if svc.CreatedAt.IsZero() {
		svc.CreatedAt = now
	}
	svc.UpdatedAt = now

	tags, err := marshalJSON(svc.IdentityTags)
	if err != nil {
		return fmt.Errorf("failed to marshal identity tags: %w", err)
	}
	synthetic, err := marshalJSON(svc.Synthetic)
	if err != nil {
		return fmt.Errorf("failed to marshal synthetic queries: %w", err)
	}
	embedding, err := marshalJSON(svc.Embedding)
	if err != nil {
		return fmt.Errorf("failed to marshal embedding: %w", err)
	}
	hours, err := marshalJSON(svc.Hours)
	if err != nil {
		return fmt.Errorf("failed to marshal hours: %w", err)
	}

	var lat, lng sql.NullFloat64
	if svc.Location != nil {
		lat = sql.NullFloat64{Float64: svc.Location.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: svc.Location.Lng, Valid: true}
	}
	var lastVerified sql.NullTime
	if svc.LastVerified != nil {
		lastVerified = sql.NullTime{Time: *svc.LastVerified, Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO services
		 (id, name_en, name_fr, description_en, description_fr, category, verification,
		  identity_tags, synthetic_queries, lat, lng, embedding, last_verified, hours,
		  created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		svc.ID, svc.Name.EN, svc.Name.FR, svc.Description.EN, svc.Description.FR,
		string(svc.Category), int(svc.Verification),
		tags, synthetic, lat, lng, embedding, lastVerified, hours,
		svc.CreatedAt, svc.UpdatedAt,
	)
	return err
}

// GetService returns a service by ID.
func (s *SQLiteStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM services WHERE id = ?`, id)
	svc, err := scanService(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return svc, err
}

// LoadServices returns all services in insertion order.
func (s *SQLiteStore) LoadServices(ctx context.Context) ([]*models.Service, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` FROM services ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// CountServices returns the number of stored services.
func (s *SQLiteStore) CountServices(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count)
	return count, err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const selectColumns = `SELECT id, name_en, name_fr, description_en, description_fr,
	category, verification, identity_tags, synthetic_queries, lat, lng,
	embedding, last_verified, hours, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanService(row rowScanner) (*models.Service, error) {
	var (
		svc          models.Service
		tags         sql.NullString
		synthetic    sql.NullString
		embedding    sql.NullString
		hours        sql.NullString
		lat, lng     sql.NullFloat64
		lastVerified sql.NullTime
		verification int
		category     string
	)
	err := row.Scan(&svc.ID, &svc.Name.EN, &svc.Name.FR, &svc.Description.EN,
		&svc.Description.FR, &category, &verification, &tags, &synthetic,
		&lat, &lng, &embedding, &lastVerified, &hours, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		return nil, err
	}

	svc.Category = models.Category(category)
	svc.Verification = models.VerificationLevel(verification)
	if lat.Valid && lng.Valid {
		svc.Location = &models.Location{Lat: lat.Float64, Lng: lng.Float64}
	}
	if lastVerified.Valid {
		t := lastVerified.Time
		svc.LastVerified = &t
	}
	if err := unmarshalJSON(tags, &svc.IdentityTags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity tags: %w", err)
	}
	if err := unmarshalJSON(synthetic, &svc.Synthetic); err != nil {
		return nil, fmt.Errorf("failed to unmarshal synthetic queries: %w", err)
	}
	if err := unmarshalJSON(embedding, &svc.Embedding); err != nil {
		return nil, fmt.Errorf("failed to unmarshal embedding: %w", err)
	}
	if err := unmarshalJSON(hours, &svc.Hours); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hours: %w", err)
	}
	return &svc, nil
}

func marshalJSON(v any) (sql.NullString, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func unmarshalJSON(s sql.NullString, dest any) error {
	if !s.Valid || s.String == "" || s.String == "null" {
		return nil
	}
	return json.Unmarshal([]byte(s.String), dest)
}
