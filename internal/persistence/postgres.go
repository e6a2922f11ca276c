package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the snapshot as a single JSONB row per property.
// One row is enough because every checkpoint replaces the whole state.
type PostgresStore struct {
	db       *pgxpool.Pool
	property string
}

func NewPostgresStore(db *pgxpool.Pool, property string) *PostgresStore {
	return &PostgresStore{db: db, property: property}
}

func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = s.db.Exec(ctx, `INSERT INTO property_snapshots (property, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (property) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`, s.property, data)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT state FROM property_snapshots WHERE property=$1`, s.property).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: property %s: %v", ErrCorruptSnapshot, s.property, err)
	}
	return &snap, nil
}

var _ Store = (*PostgresStore)(nil)
