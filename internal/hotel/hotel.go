package hotel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avstrong/hotel/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (uuid.UUID, error)
}

type storageReader interface {
	GetRoomByNumber(ctx context.Context, number string) (*Room, error)
	Rooms(ctx context.Context) ([]*Room, error)
	Reservations(ctx context.Context) ([]*Reservation, error)
	GetCustomer(ctx context.Context, email string) (*Customer, error)
	Customers(ctx context.Context) ([]*Customer, error)
}

type storageWriter interface {
	SaveRoom(ctx context.Context, room *Room) (bool, error)
	SaveReservation(ctx context.Context, reservation *Reservation) error
	SaveCustomer(ctx context.Context, customer *Customer) error
}

type storage interface {
	storageReader
	storageWriter
}

type Manager struct {
	l           *logger.Logger
	storage     storage
	idGenerator idGenerator
	now         func() time.Time

	// serialises BookRoom so the availability check and the insert cannot interleave
	bookMu sync.Mutex
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator) *Manager {
	//nolint:exhaustruct
	return &Manager{
		l:           l,
		storage:     storage,
		idGenerator: idGenerator,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// AddRoom stores room unless an equal one is already known. A duplicate is
// reported as false, not as an error.
func (m *Manager) AddRoom(ctx context.Context, room *Room) (bool, error) {
	added, err := m.storage.SaveRoom(ctx, room)
	if err != nil {
		return false, fmt.Errorf("save room %s to storage: %w", room.Number, err)
	}

	if !added {
		m.l.LogWarnf("Room %s (%s) already exists", room.Number, room.Type)
	}

	return added, nil
}

// AddRooms adds every room and returns the ones rejected as duplicates.
func (m *Manager) AddRooms(ctx context.Context, rooms []*Room) ([]*Room, error) {
	var duplicates []*Room

	for _, room := range rooms {
		added, err := m.AddRoom(ctx, room)
		if err != nil {
			return duplicates, err
		}

		if !added {
			duplicates = append(duplicates, room)
		}
	}

	return duplicates, nil
}

func (m *Manager) GetRoom(ctx context.Context, number string) (*Room, error) {
	room, err := m.storage.GetRoomByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", number, err)
	}

	return room, nil
}

func (m *Manager) AllRooms(ctx context.Context) ([]*Room, error) {
	rooms, err := m.storage.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rooms from storage: %w", err)
	}

	return rooms, nil
}

// AddReservation stores a new reservation. Only an exact duplicate (same room,
// same check-in and check-out) is rejected; overlaps are not checked here.
func (m *Manager) AddReservation(
	ctx context.Context,
	customer *Customer,
	room *Room,
	checkIn, checkOut time.Time,
) (*Reservation, error) {
	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNextID, err)
	}

	reservation := &Reservation{
		ID:        id,
		Customer:  customer,
		Room:      room,
		CheckIn:   Day(checkIn),
		CheckOut:  Day(checkOut),
		CreatedAt: m.now(),
	}

	if err := m.storage.SaveReservation(ctx, reservation); err != nil {
		return nil, fmt.Errorf("save reservation for room %s: %w", room.Number, err)
	}

	m.l.LogInfo("Reservation %v has been created for %v", reservation.ID, customer.Email)

	return reservation, nil
}

// BookRoom resolves the customer and the room and reserves the room if it is
// still free for the requested dates.
func (m *Manager) BookRoom(ctx context.Context, email, number string, checkIn, checkOut time.Time) (*Reservation, error) {
	customer, err := m.GetCustomer(ctx, email)
	if err != nil {
		return nil, err
	}

	room, err := m.GetRoom(ctx, number)
	if err != nil {
		return nil, err
	}

	m.bookMu.Lock()
	defer m.bookMu.Unlock()

	available, err := m.FindAvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if !containsRoom(available, room) {
		return nil, fmt.Errorf("room %s: %w", room.Number, ErrRoomUnavailable)
	}

	return m.AddReservation(ctx, customer, room, checkIn, checkOut)
}

func (m *Manager) CustomersReservations(ctx context.Context, email string) ([]*Reservation, error) {
	reservations, err := m.storage.Reservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations from storage: %w", err)
	}

	var result []*Reservation

	for _, reservation := range reservations {
		if reservation.Customer != nil && reservation.Customer.Email == email {
			result = append(result, reservation)
		}
	}

	return result, nil
}

func (m *Manager) AllReservations(ctx context.Context) ([]*Reservation, error) {
	reservations, err := m.storage.Reservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations from storage: %w", err)
	}

	return reservations, nil
}

func (m *Manager) AddCustomer(ctx context.Context, email, firstName, lastName string) (*Customer, error) {
	customer, err := NewCustomer(email, firstName, lastName)
	if err != nil {
		return nil, err
	}

	if err := m.storage.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer %s: %w", email, err)
	}

	m.l.LogInfo("Customer %v has been registered", email)

	return customer, nil
}

func (m *Manager) GetCustomer(ctx context.Context, email string) (*Customer, error) {
	customer, err := m.storage.GetCustomer(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get customer %s: %w", email, err)
	}

	return customer, nil
}

// CustomerExists reports whether email is registered.
func (m *Manager) CustomerExists(ctx context.Context, email string) (bool, error) {
	_, err := m.storage.GetCustomer(ctx, email)
	if errors.Is(err, ErrRecordNotFound) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("get customer %s: %w", email, err)
	}

	return true, nil
}

func (m *Manager) AllCustomers(ctx context.Context) ([]*Customer, error) {
	customers, err := m.storage.Customers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers from storage: %w", err)
	}

	return customers, nil
}

func containsRoom(rooms []*Room, room *Room) bool {
	for _, r := range rooms {
		if r.Equal(room) {
			return true
		}
	}

	return false
}
