package hotel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotel/internal/hotel"
)

func roomNumbers(rooms []*hotel.Room) []string {
	numbers := make([]string, 0, len(rooms))
	for _, room := range rooms {
		numbers = append(numbers, room.Number)
	}

	return numbers
}

func TestFindAvailableRoomsEmptyRegistry(t *testing.T) {
	t.Parallel()

	m := newManager(t)

	rooms, err := m.FindAvailableRooms(context.Background(), date(2024, 1, 1), date(2024, 1, 5))
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestFindAvailableRooms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		checkIn   int
		checkOut  int
		available bool
	}{
		{name: "back to back after", checkIn: 5, checkOut: 10, available: true},
		{name: "back to back before", checkIn: 1, checkOut: 3, available: true},
		{name: "overlaps end", checkIn: 3, checkOut: 6, available: false},
		{name: "overlaps start", checkIn: 2, checkOut: 4, available: false},
		{name: "same dates", checkIn: 3, checkOut: 5, available: false},
		{name: "inside", checkIn: 3, checkOut: 4, available: false},
		{name: "encloses", checkIn: 1, checkOut: 10, available: true},
		{name: "starts inside ends after", checkIn: 4, checkOut: 10, available: false},
		{name: "starts before ends inside", checkIn: 1, checkOut: 4, available: false},
		{name: "far before", checkIn: 1, checkOut: 2, available: true},
		{name: "far after", checkIn: 20, checkOut: 25, available: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			m := newManager(t)
			x := mustRoom(t, "1", 100, hotel.RoomTypeSingle)
			y := mustRoom(t, "2", 100, hotel.RoomTypeDouble)
			_, err := m.AddRooms(ctx, []*hotel.Room{x, y})
			require.NoError(t, err)

			customer := mustCustomer(t, m, "guest@example.com")
			_, err = m.AddReservation(ctx, customer, x, date(2024, 1, 3), date(2024, 1, 5))
			require.NoError(t, err)

			rooms, err := m.FindAvailableRooms(ctx, date(2024, 1, tt.checkIn), date(2024, 1, tt.checkOut))
			require.NoError(t, err)

			if tt.available {
				assert.Equal(t, []string{"1", "2"}, roomNumbers(rooms))
			} else {
				assert.Equal(t, []string{"2"}, roomNumbers(rooms))
			}
		})
	}
}

func TestFindAvailableRoomsBackToBackAndOverlap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)
	x := mustRoom(t, "7", 100, hotel.RoomTypeSingle)
	_, err := m.AddRoom(ctx, x)
	require.NoError(t, err)

	customer := mustCustomer(t, m, "guest@example.com")
	_, err = m.AddReservation(ctx, customer, x, date(2024, 1, 1), date(2024, 1, 5))
	require.NoError(t, err)

	rooms, err := m.FindAvailableRooms(ctx, date(2024, 1, 5), date(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, roomNumbers(rooms))

	rooms, err = m.FindAvailableRooms(ctx, date(2024, 1, 3), date(2024, 1, 6))
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestFindAvailableRoomsAfterBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)
	_, err := m.AddRoom(ctx, mustRoom(t, "101", 100, hotel.RoomTypeSingle))
	require.NoError(t, err)
	mustCustomer(t, m, "guest@example.com")

	_, err = m.BookRoom(ctx, "guest@example.com", "101", date(2025, 1, 10), date(2025, 1, 12))
	require.NoError(t, err)

	rooms, err := m.FindAvailableRooms(ctx, date(2025, 1, 10), date(2025, 1, 12))
	require.NoError(t, err)
	assert.NotContains(t, roomNumbers(rooms), "101")

	rooms, err = m.FindAvailableRooms(ctx, date(2025, 1, 12), date(2025, 1, 15))
	require.NoError(t, err)
	assert.Contains(t, roomNumbers(rooms), "101")
}

func TestMinAvailableCheckoutDate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)

	_, ok, err := m.MinAvailableCheckoutDate(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	room := mustRoom(t, "1", 10, hotel.RoomTypeSingle)
	customer := mustCustomer(t, m, "guest@example.com")

	_, err = m.AddReservation(ctx, customer, room, date(2024, 3, 1), date(2024, 3, 9))
	require.NoError(t, err)
	_, err = m.AddReservation(ctx, customer, room, date(2024, 1, 1), date(2024, 1, 4))
	require.NoError(t, err)
	_, err = m.AddReservation(ctx, customer, room, date(2024, 2, 1), date(2024, 2, 2))
	require.NoError(t, err)

	minCheckOut, ok, err := m.MinAvailableCheckoutDate(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, date(2024, 1, 4), minCheckOut)
}

func TestFindRoomsWithFallbackDirectHit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)
	_, err := m.AddRoom(ctx, mustRoom(t, "1", 10, hotel.RoomTypeSingle))
	require.NoError(t, err)

	suggestion, err := m.FindRoomsWithFallback(ctx, date(2024, 5, 1), date(2024, 5, 3))
	require.NoError(t, err)
	assert.False(t, suggestion.Shifted)
	assert.Equal(t, date(2024, 5, 1), suggestion.CheckIn)
	assert.Equal(t, date(2024, 5, 3), suggestion.CheckOut)
	assert.Equal(t, []string{"1"}, roomNumbers(suggestion.Rooms))
}

func TestFindRoomsWithFallbackShiftsAndClamps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)
	room := mustRoom(t, "1", 10, hotel.RoomTypeSingle)
	_, err := m.AddRoom(ctx, room)
	require.NoError(t, err)

	customer := mustCustomer(t, m, "guest@example.com")
	_, err = m.AddReservation(ctx, customer, room, date(2024, 5, 1), date(2024, 5, 6))
	require.NoError(t, err)

	// Requested 05/02-05/04 is booked; 05/09-05/11 is free. The earliest
	// check-out, 05/06, precedes 05/09 so the window is pulled back to it.
	suggestion, err := m.FindRoomsWithFallback(ctx, date(2024, 5, 2), date(2024, 5, 4))
	require.NoError(t, err)
	assert.True(t, suggestion.Shifted)
	assert.Equal(t, []string{"1"}, roomNumbers(suggestion.Rooms))
	assert.Equal(t, date(2024, 5, 6), suggestion.CheckIn)
	assert.Equal(t, date(2024, 5, 8), suggestion.CheckOut)
}

func TestFindRoomsWithFallbackShiftWithoutClamp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)
	room := mustRoom(t, "1", 10, hotel.RoomTypeSingle)
	_, err := m.AddRoom(ctx, room)
	require.NoError(t, err)

	customer := mustCustomer(t, m, "guest@example.com")
	_, err = m.AddReservation(ctx, customer, room, date(2024, 5, 1), date(2024, 5, 10))
	require.NoError(t, err)

	// Shifted window 05/10-05/12 starts on the earliest check-out, so no clamp.
	suggestion, err := m.FindRoomsWithFallback(ctx, date(2024, 5, 3), date(2024, 5, 5))
	require.NoError(t, err)
	assert.True(t, suggestion.Shifted)
	assert.Equal(t, date(2024, 5, 10), suggestion.CheckIn)
	assert.Equal(t, date(2024, 5, 12), suggestion.CheckOut)
}

func TestFindRoomsWithFallbackNoAvailability(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newManager(t)

	_, err := m.FindRoomsWithFallback(ctx, date(2024, 5, 1), date(2024, 5, 3))
	require.ErrorIs(t, err, hotel.ErrNoAvailability)

	room := mustRoom(t, "1", 10, hotel.RoomTypeSingle)
	_, err = m.AddRoom(ctx, room)
	require.NoError(t, err)

	customer := mustCustomer(t, m, "guest@example.com")
	_, err = m.AddReservation(ctx, customer, room, date(2024, 5, 1), date(2024, 5, 31))
	require.NoError(t, err)

	_, err = m.FindRoomsWithFallback(ctx, date(2024, 5, 1), date(2024, 5, 3))
	require.ErrorIs(t, err, hotel.ErrNoAvailability)
}
