package availability

import (
	"time"

	"github.com/Domenick1991/hotelreserve/internal/catalog"
	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/Domenick1991/hotelreserve/internal/ledger"
)

// Index answers date-range availability questions by scanning the ledger.
// Availability is always derived; nothing is cached or stored on the room.
type Index struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

func NewIndex(c *catalog.Catalog, l *ledger.Ledger) *Index {
	return &Index{catalog: c, ledger: l}
}

// IsAvailable reports whether no active reservation on the room overlaps
// the half-open range [checkIn, checkOut). A stay checking out on checkIn
// day does not conflict.
func (x *Index) IsAvailable(roomNumber int, checkIn, checkOut time.Time) bool {
	for _, r := range x.ledger.ActiveByRoom(roomNumber) {
		if domain.Overlaps(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			return false
		}
	}
	return true
}

// Search lists rooms of the given type (RoomTypeAny matches all) that are
// free for the whole range, in ascending room-number order. The range is
// validated before any filtering.
func (x *Index) Search(roomType domain.RoomType, checkIn, checkOut time.Time) ([]domain.Room, error) {
	if !domain.ValidRange(checkIn, checkOut) {
		return nil, domain.ErrInvalidDateRange
	}

	rooms := make([]domain.Room, 0)
	for _, room := range x.catalog.All() {
		if roomType != domain.RoomTypeAny && room.Type != roomType {
			continue
		}
		if !x.IsAvailable(room.Number, checkIn, checkOut) {
			continue
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
