package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/report"
)

type Conf struct {
	L         *logger.Logger
	In        io.Reader
	Out       io.Writer
	HotelName string
	ReportDir string
	// Now is the clock used to reject past dates. Defaults to time.Now.
	Now func() time.Time
}

type Session struct {
	l        *logger.Logger
	conf     Conf
	in       *bufio.Scanner
	out      io.Writer
	hManager *hotel.Manager
	now      func() time.Time
	export   func(dir string, data report.Data, now time.Time) (string, error)
}

func New(conf Conf, hotelManager *hotel.Manager) *Session {
	now := conf.Now
	if now == nil {
		now = time.Now
	}

	return &Session{
		l:        conf.L,
		conf:     conf,
		in:       bufio.NewScanner(conf.In),
		out:      conf.Out,
		hManager: hotelManager,
		now:      now,
		export:   report.Export,
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	commands := map[int]struct {
		name string
		cmd  command
	}{
		1: {"findAndReserveRoom", s.findAndReserveRoom},
		2: {"showCustomersReservations", s.showCustomersReservations},
		3: {"createAccount", s.createAccount},
		4: {"adminMenu", s.adminMenu},
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		s.printMainMenu()

		option, err := s.readMenuOption()

		switch {
		case errors.Is(err, errInputClosed):
			return nil
		case errors.Is(err, errNotANumber):
			s.println("Please enter a number")

			continue
		case err != nil:
			return err
		}

		if option == 5 { //nolint:gomnd
			s.println("Exiting the app")

			return nil
		}

		entry, ok := commands[option]
		if !ok {
			s.println("Please enter a number representing a menu option from above")

			continue
		}

		if err := s.execute(ctx, entry.name, entry.cmd); err != nil {
			return nil //nolint:nilerr // input closed, session is over
		}
	}
}

// execute runs cmd behind the middlewares and turns its failure into a user
// message. Only a closed input is returned.
func (s *Session) execute(ctx context.Context, name string, cmd command) error {
	err := s.applyMiddlewares(cmd, s.loggerMiddleware(name), s.recoverMiddleware())(ctx)
	if err == nil {
		return nil
	}

	if errors.Is(err, errInputClosed) {
		return err
	}

	s.reportError(err)

	return nil
}

func (s *Session) reportError(err error) {
	if inputErr := hotel.IsInputError(err); inputErr != nil {
		for _, msg := range inputErr.Messages() {
			s.println(msg)
		}

		return
	}

	switch {
	case errors.Is(err, hotel.ErrAlreadyExists):
		s.println("Already exists:", err.Error())
	case errors.Is(err, hotel.ErrRecordNotFound):
		s.println("Not found:", err.Error())
	case errors.Is(err, hotel.ErrRoomUnavailable):
		s.println("The room you picked is actually not available anymore. Please search again")
	default:
		s.l.LogErrorf("Command failed: %v", err.Error())
		s.println("Unknown error occurred.")
		s.println(err.Error())
	}
}

func (s *Session) printMainMenu() {
	s.println("Welcome to", s.conf.HotelName)
	s.println("----------------------------------------")
	s.println("1. Find and reserve a room")
	s.println("2. See my reservations")
	s.println("3. Create an account")
	s.println("4. Admin")
	s.println("5. Exit")
	s.println("----------------------------------------")
	s.println("Please enter a number to select a menu option")
}

func (s *Session) findAndReserveRoom(ctx context.Context) error {
	checkIn, checkOut, err := s.readStayDates()
	if err != nil {
		return err
	}

	suggestion, err := s.hManager.FindRoomsWithFallback(ctx, checkIn, checkOut)
	if errors.Is(err, hotel.ErrNoAvailability) {
		s.printf("No rooms found for selected dates. Trying to find a room in the next %d days\n", hotel.FallbackShiftDays)
		s.printf("No free rooms in the next %d days found. Try different dates\n", hotel.FallbackShiftDays)

		return nil
	}

	if err != nil {
		return err
	}

	if suggestion.Shifted {
		s.printf("No rooms found for selected dates. Trying to find a room in the next %d days\n", hotel.FallbackShiftDays)
		s.printf("You can book following rooms from %s to %s:\n", formatDate(suggestion.CheckIn), formatDate(suggestion.CheckOut))
		s.printRooms(suggestion.Rooms)

		return nil
	}

	s.println("Following rooms are available for booking:")
	s.printRooms(suggestion.Rooms)

	book, err := s.readYesNo("Would you like to book one of the rooms above? (y/n)")
	if err != nil || !book {
		return err
	}

	hasAccount, err := s.readYesNo("Do you have an account? (y/n)")
	if err != nil {
		return err
	}

	if !hasAccount {
		s.println("Please create an account in main menu")

		return nil
	}

	s.println("Please enter your email")

	email, err := s.readEmail()
	if err != nil {
		return err
	}

	exists, err := s.hManager.CustomerExists(ctx, email)
	if err != nil {
		return err
	}

	if !exists {
		s.println("You are still not registered with this email. Please create an account")

		return nil
	}

	number, err := s.readRoomNumberToBook(suggestion.Rooms)
	if err != nil {
		return err
	}

	reservation, err := s.hManager.BookRoom(ctx, email, number, checkIn, checkOut)
	if err != nil {
		return err
	}

	s.println(reservation.String())

	return nil
}

func (s *Session) showCustomersReservations(ctx context.Context) error {
	s.println("Please enter your email")

	email, err := s.readEmail()
	if err != nil {
		return err
	}

	exists, err := s.hManager.CustomerExists(ctx, email)
	if err != nil {
		return err
	}

	if !exists {
		s.println("You are still not registered with this email. Please create an account")

		return nil
	}

	reservations, err := s.hManager.CustomersReservations(ctx, email)
	if err != nil {
		return err
	}

	if len(reservations) == 0 {
		s.println("You still have no reservations with us")

		return nil
	}

	s.println("Your reservations:")

	for _, reservation := range reservations {
		s.println(reservation.String())
	}

	return nil
}

func (s *Session) createAccount(ctx context.Context) error {
	for {
		s.println("Enter your email")

		email, err := s.readEmail()
		if err != nil {
			return err
		}

		exists, err := s.hManager.CustomerExists(ctx, email)
		if err != nil {
			return err
		}

		if exists {
			s.println("Customer with this email already registered.")

			continue
		}

		s.println("Enter your first name")

		firstName, err := s.readName("first")
		if err != nil {
			return err
		}

		s.println("Enter your last name")

		lastName, err := s.readName("last")
		if err != nil {
			return err
		}

		if _, err := s.hManager.AddCustomer(ctx, email, firstName, lastName); err != nil {
			return err
		}

		s.println("Your account successfully created")

		return nil
	}
}

func (s *Session) printRooms(rooms []*hotel.Room) {
	for _, room := range rooms {
		s.println(room.String())
	}
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Session) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}
