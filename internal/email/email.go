package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/hotelreserve/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.ReservationEvent) error {
	fmt.Printf("send email to %s (%s) about %s for room %d, %s to %s\n",
		event.GuestName, event.GuestEmail, event.Type, event.RoomNumber,
		event.CheckIn.Format("2006-01-02"), event.CheckOut.Format("2006-01-02"))
	return nil
}
