package persistence

import (
	"context"
	"errors"

	"github.com/Domenick1991/hotelreserve/internal/domain"
)

// ErrCorruptSnapshot wraps any snapshot that exists but cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// Snapshot is the full persisted state of one property: the room catalog and
// the complete reservation ledger. Checkpointing writes the whole snapshot
// after every successful mutation; at this scale (tens to low thousands of
// reservations) that is simpler than an incremental log.
type Snapshot struct {
	Rooms        []domain.Room        `json:"rooms"`
	Reservations []domain.Reservation `json:"reservations"`
}

// Store persists snapshots. Load returns (nil, nil) when no snapshot has
// been written yet, so callers can bootstrap defaults; a snapshot that
// exists but cannot be read is reported wrapping ErrCorruptSnapshot.
type Store interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}
