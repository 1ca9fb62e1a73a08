package hotel

import (
	"context"
	"fmt"
	"time"
)

// FallbackShiftDays is how far the fallback search moves the requested window.
const FallbackShiftDays = 7

// Suggestion is the outcome of a search with fallback. When Shifted is set the
// rooms are free for the shifted window, not for the requested one.
type Suggestion struct {
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    []*Room
	Shifted  bool
}

// overlaps reports whether reservation blocks a stay from checkIn to checkOut.
// The stay is free when it starts before the reservation or on/after its
// check-out, and ends on/before its check-in or after its check-out. The
// check-out day itself is free, so back-to-back stays do not collide.
func overlaps(reservation *Reservation, checkIn, checkOut time.Time) bool {
	startFree := checkIn.Before(reservation.CheckIn) || !checkIn.Before(reservation.CheckOut)
	endFree := !checkOut.After(reservation.CheckIn) || checkOut.After(reservation.CheckOut)

	return !(startFree && endFree)
}

// FindAvailableRooms returns the rooms without any reservation blocking the
// stay from checkIn to checkOut, in registration order.
func (m *Manager) FindAvailableRooms(ctx context.Context, checkIn, checkOut time.Time) ([]*Room, error) {
	rooms, err := m.storage.Rooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rooms from storage: %w", err)
	}

	reservations, err := m.storage.Reservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations from storage: %w", err)
	}

	checkIn, checkOut = Day(checkIn), Day(checkOut)

	booked := make(map[string]struct{})

	for _, reservation := range reservations {
		if overlaps(reservation, checkIn, checkOut) {
			booked[reservation.Room.Key()] = struct{}{}
		}
	}

	available := make([]*Room, 0, len(rooms))

	for _, room := range rooms {
		if _, ok := booked[room.Key()]; ok {
			continue
		}

		available = append(available, room)
	}

	return available, nil
}

// MinAvailableCheckoutDate returns the earliest check-out among all
// reservations. The bool is false when nothing is booked yet.
func (m *Manager) MinAvailableCheckoutDate(ctx context.Context) (time.Time, bool, error) {
	reservations, err := m.storage.Reservations(ctx)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get reservations from storage: %w", err)
	}

	if len(reservations) == 0 {
		return time.Time{}, false, nil
	}

	minCheckOut := reservations[0].CheckOut

	for _, reservation := range reservations[1:] {
		if reservation.CheckOut.Before(minCheckOut) {
			minCheckOut = reservation.CheckOut
		}
	}

	return minCheckOut, true, nil
}

// FindRoomsWithFallback searches the requested window and, when nothing is
// free, the same window FallbackShiftDays later. A shifted window whose start
// lies after the earliest check-out is pulled back to that check-out, keeping
// its length.
func (m *Manager) FindRoomsWithFallback(ctx context.Context, checkIn, checkOut time.Time) (*Suggestion, error) {
	checkIn, checkOut = Day(checkIn), Day(checkOut)

	rooms, err := m.FindAvailableRooms(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if len(rooms) > 0 {
		return &Suggestion{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Rooms:    rooms,
			Shifted:  false,
		}, nil
	}

	shiftedIn := checkIn.AddDate(0, 0, FallbackShiftDays)
	shiftedOut := checkOut.AddDate(0, 0, FallbackShiftDays)

	rooms, err = m.FindAvailableRooms(ctx, shiftedIn, shiftedOut)
	if err != nil {
		return nil, err
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf(
			"from %s to %s and %d days later: %w",
			checkIn.Format(dayLayout),
			checkOut.Format(dayLayout),
			FallbackShiftDays,
			ErrNoAvailability,
		)
	}

	minCheckOut, ok, err := m.MinAvailableCheckoutDate(ctx)
	if err != nil {
		return nil, err
	}

	if ok && minCheckOut.Before(shiftedIn) {
		length := shiftedOut.Sub(shiftedIn)
		shiftedIn = minCheckOut
		shiftedOut = minCheckOut.Add(length)
	}

	return &Suggestion{
		CheckIn:  shiftedIn,
		CheckOut: shiftedOut,
		Rooms:    rooms,
		Shifted:  true,
	}, nil
}
