package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusPaid      ReservationStatus = "PAID"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation references its room by number; rooms are shared by many
// reservations and must never be embedded by value.
type Reservation struct {
	ID         string            `json:"id"`
	GuestName  string            `json:"guest_name"`
	GuestEmail string            `json:"guest_email"`
	RoomNumber int               `json:"room_number"`
	CheckIn    time.Time         `json:"check_in"`
	CheckOut   time.Time         `json:"check_out"`
	TotalCents int64             `json:"total_cents"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// Active reports whether the reservation still holds its dates.
func (r *Reservation) Active() bool {
	return r.Status != ReservationStatusCancelled
}

// Nights counts whole days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int64 {
	return int64(checkOut.Sub(checkIn).Hours() / 24)
}

// TotalPriceCents is nights multiplied by the room's nightly rate.
func TotalPriceCents(room Room, checkIn, checkOut time.Time) int64 {
	return Nights(checkIn, checkOut) * room.RateCents
}

// Overlaps is the half-open interval test: [a1,a2) and [b1,b2) overlap
// iff a1 < b2 && b1 < a2. Back-to-back stays sharing a boundary date
// (checkout day == next check-in day) do not overlap.
func Overlaps(a1, a2, b1, b2 time.Time) bool {
	return a1.Before(b2) && b1.Before(a2)
}

// ValidRange requires check-out strictly after check-in.
func ValidRange(checkIn, checkOut time.Time) bool {
	return checkOut.After(checkIn)
}
