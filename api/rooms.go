package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/Domenick1991/hotelreserve/internal/service/booking"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type RoomHandler struct {
	service booking.BookingUseCase
}

type addRoomRequest struct {
	Number    int    `json:"number"`
	Type      string `json:"type"`
	RateCents int64  `json:"rate_cents"`
}

type roomResponse struct {
	Number    int    `json:"number"`
	Type      string `json:"type"`
	RateCents int64  `json:"rate_cents"`
}

func NewRoomHandler(service booking.BookingUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/search", h.search)
}

func (h *RoomHandler) list(c *gin.Context) {
	rooms, err := h.service.Rooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(rooms))
}

func (h *RoomHandler) create(c *gin.Context) {
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roomType, err := domain.ParseRoomType(req.Type)
	if err != nil || roomType == domain.RoomTypeAny {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrUnknownRoomType.Error()})
		return
	}

	room := domain.Room{Number: req.Number, Type: roomType, RateCents: req.RateCents}
	if err := h.service.AddRoom(c.Request.Context(), room); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRoomResponse(room))
}

// search expects type ("any" or a room type) plus check_in/check_out dates
// in YYYY-MM-DD form. Dates are parsed here; the engine only sees times.
func (h *RoomHandler) search(c *gin.Context) {
	roomType, err := domain.ParseRoomType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, err := time.Parse(dateLayout, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date"})
		return
	}
	checkOut, err := time.Parse(dateLayout, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date"})
		return
	}

	rooms, err := h.service.SearchAvailableRooms(c.Request.Context(), roomType, checkIn, checkOut)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(rooms))
}

func toRoomResponse(r domain.Room) roomResponse {
	return roomResponse{Number: r.Number, Type: string(r.Type), RateCents: r.RateCents}
}

func toRoomResponses(rooms []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomResponse(r))
	}
	return out
}
