package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/Domenick1991/hotelreserve/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service booking.BookingUseCase
}

type createReservationRequest struct {
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}

type reservationResponse struct {
	ID         string `json:"id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
}

func NewReservationHandler(service booking.BookingUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id", h.find)
	router.POST("/:id/payment", h.pay)
	router.DELETE("/:id", h.cancel)
}

func (h *ReservationHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date"})
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date"})
		return
	}

	reservation, err := h.service.MakeReservation(c.Request.Context(), booking.MakeReservationInput{
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		RoomNumber: req.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReservationResponse(reservation))
}

func (h *ReservationHandler) find(c *gin.Context) {
	reservation, err := h.service.FindReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) pay(c *gin.Context) {
	reservation, err := h.service.ProcessPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	reservation, err := h.service.CancelReservation(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(reservation))
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:         r.ID,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		RoomNumber: r.RoomNumber,
		CheckIn:    r.CheckIn.Format(dateLayout),
		CheckOut:   r.CheckOut.Format(dateLayout),
		TotalCents: r.TotalCents,
		Status:     string(r.Status),
	}
}
