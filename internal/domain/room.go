package domain

import (
	"fmt"
	"strings"
)

type RoomType string

const (
	RoomTypeStandard     RoomType = "STANDARD"
	RoomTypeDeluxe       RoomType = "DELUXE"
	RoomTypeSuite        RoomType = "SUITE"
	RoomTypeExecutive    RoomType = "EXECUTIVE"
	RoomTypePresidential RoomType = "PRESIDENTIAL"

	// RoomTypeAny is the zero filter: matches every room type in a search.
	RoomTypeAny RoomType = ""
)

var roomTypes = map[string]RoomType{
	"STANDARD":     RoomTypeStandard,
	"DELUXE":       RoomTypeDeluxe,
	"SUITE":        RoomTypeSuite,
	"EXECUTIVE":    RoomTypeExecutive,
	"PRESIDENTIAL": RoomTypePresidential,
}

// ParseRoomType accepts a type name in any case, or "any"/"" for no filter.
func ParseRoomType(s string) (RoomType, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" || upper == "ANY" {
		return RoomTypeAny, nil
	}
	if t, ok := roomTypes[upper]; ok {
		return t, nil
	}
	return RoomTypeAny, fmt.Errorf("%w: %q", ErrUnknownRoomType, s)
}

func (t RoomType) Valid() bool {
	_, ok := roomTypes[string(t)]
	return ok
}

// Room is immutable after it enters the catalog. Availability is never stored
// on the room itself; it is derived from the reservation ledger per date range.
type Room struct {
	Number    int      `json:"number"`
	Type      RoomType `json:"type"`
	RateCents int64    `json:"rate_cents"`
}
