package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/report"
)

const adminBackOption = 6

func (s *Session) adminMenu(ctx context.Context) error {
	commands := map[int]struct {
		name string
		cmd  command
	}{
		1: {"showAllCustomers", s.showAllCustomers},
		2: {"showAllRooms", s.showAllRooms},
		3: {"showAllReservations", s.showAllReservations},
		4: {"addRooms", s.addRooms},
		5: {"exportReport", s.exportReport},
	}

	for {
		s.printAdminMenu()

		option, err := s.readMenuOption()

		switch {
		case errors.Is(err, errNotANumber):
			s.println("Please enter a number")

			continue
		case err != nil:
			return err
		}

		if option == adminBackOption {
			s.println("Returning to the main menu")

			return nil
		}

		entry, ok := commands[option]
		if !ok {
			s.println("Please enter a number representing a menu option from above")

			continue
		}

		if err := s.execute(ctx, entry.name, entry.cmd); err != nil {
			return err
		}
	}
}

func (s *Session) printAdminMenu() {
	s.println("Admin menu of", s.conf.HotelName)
	s.println("----------------------------------------")
	s.println("1. See all Customers")
	s.println("2. See all Rooms")
	s.println("3. See all Reservations")
	s.println("4. Add a room")
	s.println("5. Export report")
	s.println("6. Back to Main Menu")
	s.println("----------------------------------------")
	s.println("Select a menu option")
}

func (s *Session) showAllCustomers(ctx context.Context) error {
	customers, err := s.hManager.AllCustomers(ctx)
	if err != nil {
		return err
	}

	if len(customers) == 0 {
		s.println("There are no registered customers yet. You can add one in main menu")

		return nil
	}

	for _, customer := range customers {
		s.println(customer.String())
	}

	return nil
}

func (s *Session) showAllRooms(ctx context.Context) error {
	rooms, err := s.hManager.AllRooms(ctx)
	if err != nil {
		return err
	}

	if len(rooms) == 0 {
		s.println("There are no rooms yet. Please add some")

		return nil
	}

	s.printRooms(rooms)

	return nil
}

func (s *Session) showAllReservations(ctx context.Context) error {
	reservations, err := s.hManager.AllReservations(ctx)
	if err != nil {
		return err
	}

	if len(reservations) == 0 {
		s.println("There are still no reservations")

		return nil
	}

	for _, reservation := range reservations {
		s.println(reservation.String())
	}

	return nil
}

// addRooms reads a batch of rooms and registers them. Duplicates of already
// registered rooms are reported one by one and do not stop the batch.
func (s *Session) addRooms(ctx context.Context) error {
	var batch []*hotel.Room

	for {
		room, err := s.readRoom(batch)
		if err != nil {
			return err
		}

		batch = append(batch, room)

		more, err := s.readYesNo("Add another room? (y/n)")
		if err != nil {
			return err
		}

		if !more {
			break
		}
	}

	duplicates, err := s.hManager.AddRooms(ctx, batch)
	if err != nil {
		return err
	}

	for _, room := range duplicates {
		s.printf("You have already added a room with room number %s\n", room.Number)
	}

	if added := len(batch) - len(duplicates); added > 0 {
		s.printf("%d room(s) were successfully added\n", added)
	}

	return nil
}

func (s *Session) readRoom(batch []*hotel.Room) (*hotel.Room, error) {
	number, err := s.readNewRoomNumber(batch)
	if err != nil {
		return nil, err
	}

	roomType, err := s.readRoomType()
	if err != nil {
		return nil, err
	}

	var price float64

	if roomType != hotel.RoomTypeFree {
		if price, err = s.readRoomPrice(); err != nil {
			return nil, err
		}
	}

	room, err := hotel.NewRoom(number, price, roomType)
	if err != nil {
		return nil, fmt.Errorf("build room %s: %w", number, err)
	}

	return room, nil
}

func (s *Session) exportReport(ctx context.Context) error {
	rooms, err := s.hManager.AllRooms(ctx)
	if err != nil {
		return err
	}

	reservations, err := s.hManager.AllReservations(ctx)
	if err != nil {
		return err
	}

	customers, err := s.hManager.AllCustomers(ctx)
	if err != nil {
		return err
	}

	path, err := s.export(s.conf.ReportDir, report.Data{
		Rooms:        rooms,
		Reservations: reservations,
		Customers:    customers,
	}, s.now())
	if err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	s.println("Report saved to", path)

	return nil
}
