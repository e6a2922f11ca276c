package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelreserve/api"
	"github.com/Domenick1991/hotelreserve/config"
	"github.com/Domenick1991/hotelreserve/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, bookingSvc booking.BookingUseCase) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(bookingSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.Default()

	api.NewRoomHandler(bookingSvc).Register(router.Group("/rooms"))
	api.NewReservationHandler(bookingSvc).Register(router.Group("/reservations"))

	// Health reports degraded (still 200) when the last checkpoint failed:
	// bookings keep working in memory, but a restart would lose them.
	router.GET("/health", func(c *gin.Context) {
		if err := bookingSvc.CheckpointErr(); err != nil {
			c.JSON(http.StatusOK, gin.H{"status": "degraded", "checkpoint_error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
