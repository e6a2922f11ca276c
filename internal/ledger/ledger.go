package ledger

import (
	"strings"
	"time"

	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/google/uuid"
)

const idPrefix = "RES-"

// Ledger is the append-only record of reservations. Entries are never
// removed; cancellation only transitions state, so audit history survives.
// Like the catalog, the ledger relies on the booking service for
// serialization.
type Ledger struct {
	reservations []domain.Reservation
	index        map[string]int
}

func New() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// NewFromReservations rebuilds a ledger from a snapshot, preserving order.
func NewFromReservations(reservations []domain.Reservation) *Ledger {
	l := New()
	for _, r := range reservations {
		l.index[r.ID] = len(l.reservations)
		l.reservations = append(l.reservations, r)
	}
	return l
}

// Create validates guest fields, prices the stay and appends a PENDING
// reservation with a fresh id.
func (l *Ledger) Create(guestName, guestEmail string, room domain.Room, checkIn, checkOut time.Time) (*domain.Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	guestEmail = strings.TrimSpace(guestEmail)
	if guestName == "" {
		return nil, domain.ErrEmptyGuestName
	}
	if guestEmail == "" {
		return nil, domain.ErrEmptyGuestEmail
	}

	now := time.Now().UTC()
	r := domain.Reservation{
		ID:         l.newID(),
		GuestName:  guestName,
		GuestEmail: guestEmail,
		RoomNumber: room.Number,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalCents: domain.TotalPriceCents(room, checkIn, checkOut),
		Status:     domain.ReservationStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	l.index[r.ID] = len(l.reservations)
	l.reservations = append(l.reservations, r)
	return &r, nil
}

// newID draws RES- plus the first eight hex characters of a UUID, uppercased.
// The short form keeps ids typeable; a collision in the live ledger is
// regenerated, so ids are never reused even after cancellation.
func (l *Ledger) newID() string {
	for {
		id := idPrefix + strings.ToUpper(uuid.NewString()[:8])
		if _, exists := l.index[id]; !exists {
			return id
		}
	}
}

func (l *Ledger) Find(id string) (*domain.Reservation, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	r := l.reservations[i]
	return &r, nil
}

// All returns every reservation in creation order, as copies.
func (l *Ledger) All() []domain.Reservation {
	out := make([]domain.Reservation, len(l.reservations))
	copy(out, l.reservations)
	return out
}

// ActiveByRoom returns the non-cancelled reservations holding dates on a room.
func (l *Ledger) ActiveByRoom(roomNumber int) []domain.Reservation {
	var out []domain.Reservation
	for _, r := range l.reservations {
		if r.RoomNumber == roomNumber && r.Active() {
			out = append(out, r)
		}
	}
	return out
}

// SetStatus transitions a reservation and bumps UpdatedAt. State-machine
// guards live in the booking service; the ledger only checks existence.
func (l *Ledger) SetStatus(id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	i, ok := l.index[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	l.reservations[i].Status = status
	l.reservations[i].UpdatedAt = time.Now().UTC()
	r := l.reservations[i]
	return &r, nil
}

func (l *Ledger) Len() int {
	return len(l.reservations)
}
