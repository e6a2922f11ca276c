package catalog

import (
	"sort"

	"github.com/Domenick1991/hotelreserve/internal/domain"
)

// Catalog owns the fixed set of rooms for one property. Rooms are added
// administratively and never removed; type and rate are immutable once added.
// The catalog is not safe for concurrent use on its own: the booking service
// serializes access.
type Catalog struct {
	rooms []domain.Room
	index map[int]int
}

func New() *Catalog {
	return &Catalog{index: make(map[int]int)}
}

// NewFromRooms builds a catalog from a snapshot. Duplicate numbers in the
// snapshot are rejected the same way Add rejects them.
func NewFromRooms(rooms []domain.Room) (*Catalog, error) {
	c := New()
	for _, r := range rooms {
		if err := c.Add(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add validates the room and inserts it keeping ascending number order.
func (c *Catalog) Add(room domain.Room) error {
	if !room.Type.Valid() {
		return domain.ErrUnknownRoomType
	}
	if room.RateCents < 0 {
		return domain.ErrInvalidRate
	}
	if _, ok := c.index[room.Number]; ok {
		return domain.ErrDuplicateRoomNumber
	}

	pos := sort.Search(len(c.rooms), func(i int) bool { return c.rooms[i].Number > room.Number })
	c.rooms = append(c.rooms, domain.Room{})
	copy(c.rooms[pos+1:], c.rooms[pos:])
	c.rooms[pos] = room

	for i := pos; i < len(c.rooms); i++ {
		c.index[c.rooms[i].Number] = i
	}
	return nil
}

// All returns the rooms in ascending room-number order. The returned slice
// is a copy; callers may not mutate catalog state through it.
func (c *Catalog) All() []domain.Room {
	out := make([]domain.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *Catalog) FindByNumber(number int) (domain.Room, error) {
	i, ok := c.index[number]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	return c.rooms[i], nil
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}

// DefaultRooms is the seed inventory used when no snapshot exists yet.
func DefaultRooms() []domain.Room {
	return []domain.Room{
		{Number: 101, Type: domain.RoomTypeStandard, RateCents: 9999},
		{Number: 102, Type: domain.RoomTypeStandard, RateCents: 9999},
		{Number: 201, Type: domain.RoomTypeDeluxe, RateCents: 14999},
		{Number: 202, Type: domain.RoomTypeDeluxe, RateCents: 14999},
		{Number: 301, Type: domain.RoomTypeSuite, RateCents: 24999},
		{Number: 401, Type: domain.RoomTypeExecutive, RateCents: 34999},
		{Number: 501, Type: domain.RoomTypePresidential, RateCents: 99999},
	}
}
