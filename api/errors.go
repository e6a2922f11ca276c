package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/gin-gonic/gin"
)

// statusForError maps the engine's error taxonomy onto HTTP statuses:
// validation 400, not-found 404, conflict 409, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrEmptyGuestName),
		errors.Is(err, domain.ErrEmptyGuestEmail),
		errors.Is(err, domain.ErrUnknownRoomType),
		errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrDuplicateRoomNumber),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrAlreadyCancelled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}
