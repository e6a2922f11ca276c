package domain

import "errors"

// Validation errors: rejected before any mutation.
var (
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrEmptyGuestName   = errors.New("guest name is required")
	ErrEmptyGuestEmail  = errors.New("guest email is required")
	ErrUnknownRoomType  = errors.New("unknown room type")
	ErrInvalidRate      = errors.New("nightly rate must not be negative")
)

// Not-found errors: the entity does not exist.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Conflict errors: the entity exists but the operation is not applicable
// in its current state. Expected outcomes, callers branch on them.
var (
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrAlreadyPaid         = errors.New("reservation is already paid")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
)
