package booking

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Domenick1991/hotelreserve/internal/availability"
	"github.com/Domenick1991/hotelreserve/internal/catalog"
	"github.com/Domenick1991/hotelreserve/internal/domain"
	"github.com/Domenick1991/hotelreserve/internal/kafka"
	"github.com/Domenick1991/hotelreserve/internal/ledger"
	"github.com/Domenick1991/hotelreserve/internal/persistence"
)

type BookingUseCase interface {
	SearchAvailableRooms(ctx context.Context, roomType domain.RoomType, checkIn, checkOut time.Time) ([]domain.Room, error)
	MakeReservation(ctx context.Context, input MakeReservationInput) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, id string) (*domain.Reservation, error)
	ProcessPayment(ctx context.Context, id string) (*domain.Reservation, error)
	FindReservation(ctx context.Context, id string) (*domain.Reservation, error)
	Rooms(ctx context.Context) ([]domain.Room, error)
	AddRoom(ctx context.Context, room domain.Room) error
	CheckpointErr() error
}

type Cache interface {
	GetSearch(ctx context.Context, roomType domain.RoomType, checkIn, checkOut time.Time) ([]domain.Room, error)
	SetSearch(ctx context.Context, roomType domain.RoomType, checkIn, checkOut time.Time, rooms []domain.Room) error
	InvalidateSearches(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService owns all mutable reservation state for one property.
// A single RWMutex serializes mutations so the availability re-check and
// the ledger append commit atomically; two concurrent bookings for
// overlapping dates on the same room can never both pass the check.
// Reads take the read lock and observe a consistent snapshot.
type BookingService struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	index   *availability.Index

	store              persistence.Store
	cache              Cache
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	checkpointTimeout  time.Duration

	lastCheckpointErr error
}

type MakeReservationInput struct {
	GuestName  string    `json:"guest_name"`
	GuestEmail string    `json:"guest_email"`
	RoomNumber int       `json:"room_number"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	store persistence.Store,
	cache Cache,
	producer Producer,
	eventsTopic string,
	checkpointTimeout time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	c := catalog.New()
	l := ledger.New()
	service := &BookingService{
		catalog:           c,
		ledger:            l,
		index:             availability.NewIndex(c, l),
		store:             store,
		cache:             cache,
		producer:          producer,
		eventsTopic:       eventsTopic,
		checkpointTimeout: checkpointTimeout,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Restore loads the persisted snapshot into the service. A missing snapshot
// seeds the default room inventory. A corrupt or unreadable snapshot is
// returned as an error, but the service stays usable with empty in-memory
// state; the caller decides how loudly to complain.
func (s *BookingService) Restore(ctx context.Context) error {
	if s.store == nil {
		s.seedDefaults()
		return nil
	}

	snap, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		s.seedDefaults()
		return nil
	}

	c, err := catalog.NewFromRooms(snap.Rooms)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
	s.ledger = ledger.NewFromReservations(snap.Reservations)
	s.index = availability.NewIndex(s.catalog, s.ledger)
	return nil
}

func (s *BookingService) seedDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range catalog.DefaultRooms() {
		if err := s.catalog.Add(room); err != nil {
			log.Printf("WARNING: skip seeding room %d: %v", room.Number, err)
		}
	}
}

func (s *BookingService) SearchAvailableRooms(ctx context.Context, roomType domain.RoomType, checkIn, checkOut time.Time) ([]domain.Room, error) {
	if !domain.ValidRange(checkIn, checkOut) {
		return nil, domain.ErrInvalidDateRange
	}

	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, roomType, checkIn, checkOut); err == nil && cached != nil {
			return cached, nil
		}
	}

	s.mu.RLock()
	rooms, err := s.index.Search(roomType, checkIn, checkOut)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, roomType, checkIn, checkOut, rooms)
	}
	return rooms, nil
}

func (s *BookingService) MakeReservation(ctx context.Context, input MakeReservationInput) (*domain.Reservation, error) {
	if !domain.ValidRange(input.CheckIn, input.CheckOut) {
		return nil, domain.ErrInvalidDateRange
	}

	s.mu.Lock()
	room, err := s.catalog.FindByNumber(input.RoomNumber)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	// The availability check must happen here, under the write lock, even
	// when the caller just searched: state may have changed in between.
	if !s.index.IsAvailable(room.Number, input.CheckIn, input.CheckOut) {
		s.mu.Unlock()
		return nil, domain.ErrRoomUnavailable
	}

	reservation, err := s.ledger.Create(input.GuestName, input.GuestEmail, room, input.CheckIn, input.CheckOut)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.checkpoint(ctx)
	s.mu.Unlock()

	s.invalidateSearches(ctx)
	s.publish(ctx, "reservation_created", reservation)
	return reservation, nil
}

func (s *BookingService) CancelReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	current, err := s.ledger.Find(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	switch current.Status {
	case domain.ReservationStatusCancelled:
		s.mu.Unlock()
		return nil, domain.ErrAlreadyCancelled
	case domain.ReservationStatusPaid:
		// Paid stays are not cancellable; refunds are out of scope.
		s.mu.Unlock()
		return nil, domain.ErrAlreadyPaid
	}

	updated, err := s.ledger.SetStatus(id, domain.ReservationStatusCancelled)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.checkpoint(ctx)
	s.mu.Unlock()

	s.invalidateSearches(ctx)
	s.publish(ctx, "reservation_cancelled", updated)
	return updated, nil
}

func (s *BookingService) ProcessPayment(ctx context.Context, id string) (*domain.Reservation, error) {
	s.mu.Lock()
	current, err := s.ledger.Find(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	switch current.Status {
	case domain.ReservationStatusCancelled:
		s.mu.Unlock()
		return nil, domain.ErrAlreadyCancelled
	case domain.ReservationStatusPaid:
		s.mu.Unlock()
		return nil, domain.ErrAlreadyPaid
	}

	updated, err := s.ledger.SetStatus(id, domain.ReservationStatusPaid)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.checkpoint(ctx)
	s.mu.Unlock()

	s.publish(ctx, "reservation_paid", updated)
	return updated, nil
}

func (s *BookingService) FindReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Find(id)
}

func (s *BookingService) Rooms(ctx context.Context) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.All(), nil
}

func (s *BookingService) AddRoom(ctx context.Context, room domain.Room) error {
	s.mu.Lock()
	if err := s.catalog.Add(room); err != nil {
		s.mu.Unlock()
		return err
	}
	s.checkpoint(ctx)
	s.mu.Unlock()

	s.invalidateSearches(ctx)
	return nil
}

// CheckpointErr reports the outcome of the most recent checkpoint. A failed
// checkpoint never fails the mutation that triggered it: the in-memory
// effect stands and the persistence problem is surfaced here instead.
func (s *BookingService) CheckpointErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastCheckpointErr
}

// checkpoint writes the full snapshot. Callers must hold the write lock.
func (s *BookingService) checkpoint(ctx context.Context) {
	if s.store == nil {
		return
	}

	snap := &persistence.Snapshot{
		Rooms:        s.catalog.All(),
		Reservations: s.ledger.All(),
	}

	saveCtx := ctx
	if s.checkpointTimeout > 0 {
		var cancel context.CancelFunc
		saveCtx, cancel = context.WithTimeout(ctx, s.checkpointTimeout)
		defer cancel()
	}

	if err := s.store.Save(saveCtx, snap); err != nil {
		log.Printf("WARNING: checkpoint failed, state is in memory only: %v", err)
		s.lastCheckpointErr = err
		return
	}
	s.lastCheckpointErr = nil
}

func (s *BookingService) invalidateSearches(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateSearches(ctx); err != nil {
		log.Printf("WARNING: failed to invalidate search cache: %v", err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, reservation *domain.Reservation) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		RoomNumber:    reservation.RoomNumber,
		GuestName:     reservation.GuestName,
		GuestEmail:    reservation.GuestEmail,
		CheckIn:       reservation.CheckIn,
		CheckOut:      reservation.CheckOut,
		TotalCents:    reservation.TotalCents,
		Status:        string(reservation.Status),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, reservation.ID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for reservation %s: %v", eventType, reservation.ID, err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, reservation.ID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for reservation %s: %v", eventType, reservation.ID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
