package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a1, a2   time.Time
		b1, b2   time.Time
		expected bool
	}{
		{
			name: "identical ranges",
			a1:   date(2025, 1, 1), a2: date(2025, 1, 3),
			b1: date(2025, 1, 1), b2: date(2025, 1, 3),
			expected: true,
		},
		{
			name: "partial overlap",
			a1:   date(2025, 1, 1), a2: date(2025, 1, 5),
			b1: date(2025, 1, 4), b2: date(2025, 1, 8),
			expected: true,
		},
		{
			name: "one contains the other",
			a1:   date(2025, 1, 1), a2: date(2025, 1, 10),
			b1: date(2025, 1, 3), b2: date(2025, 1, 5),
			expected: true,
		},
		{
			name: "touching, checkout equals next check-in",
			a1:   date(2025, 1, 1), a2: date(2025, 1, 3),
			b1: date(2025, 1, 3), b2: date(2025, 1, 5),
			expected: false,
		},
		{
			name: "touching, reversed order",
			a1:   date(2025, 1, 3), a2: date(2025, 1, 5),
			b1: date(2025, 1, 1), b2: date(2025, 1, 3),
			expected: false,
		},
		{
			name: "fully disjoint",
			a1:   date(2025, 1, 1), a2: date(2025, 1, 2),
			b1: date(2025, 2, 1), b2: date(2025, 2, 5),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.a1, tc.a2, tc.b1, tc.b2))
			assert.Equal(t, tc.expected, Overlaps(tc.b1, tc.b2, tc.a1, tc.a2))
		})
	}
}

func TestTotalPriceCents(t *testing.T) {
	room := Room{Number: 101, Type: RoomTypeStandard, RateCents: 9999}

	assert.Equal(t, int64(19998), TotalPriceCents(room, date(2025, 1, 1), date(2025, 1, 3)))
	assert.Equal(t, int64(9999), TotalPriceCents(room, date(2025, 1, 1), date(2025, 1, 2)))
	assert.Equal(t, int64(69993), TotalPriceCents(room, date(2025, 1, 1), date(2025, 1, 8)))
}

func TestValidRange(t *testing.T) {
	assert.True(t, ValidRange(date(2025, 1, 1), date(2025, 1, 2)))
	assert.False(t, ValidRange(date(2025, 1, 1), date(2025, 1, 1)))
	assert.False(t, ValidRange(date(2025, 1, 2), date(2025, 1, 1)))
}

func TestParseRoomType(t *testing.T) {
	testCases := []struct {
		input    string
		expected RoomType
		wantErr  bool
	}{
		{input: "standard", expected: RoomTypeStandard},
		{input: "DELUXE", expected: RoomTypeDeluxe},
		{input: "Suite", expected: RoomTypeSuite},
		{input: "executive", expected: RoomTypeExecutive},
		{input: "presidential", expected: RoomTypePresidential},
		{input: "any", expected: RoomTypeAny},
		{input: "", expected: RoomTypeAny},
		{input: "penthouse", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run("input "+tc.input, func(t *testing.T) {
			got, err := ParseRoomType(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownRoomType)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestReservationActive(t *testing.T) {
	r := Reservation{Status: ReservationStatusPending}
	assert.True(t, r.Active())

	r.Status = ReservationStatusPaid
	assert.True(t, r.Active())

	r.Status = ReservationStatusCancelled
	assert.False(t, r.Active())
}
