package console

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/avstrong/hotel/internal/hotel"
)

const inputDateLayout = "01/02/2006"

var (
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	letterRe = regexp.MustCompile(`[a-zA-Z]`)
)

func formatDate(t time.Time) string {
	return t.Format(inputDateLayout)
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) readMenuOption() (int, error) {
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}

	option, err := strconv.Atoi(line)
	if err != nil {
		return 0, errNotANumber
	}

	return option, nil
}

func (s *Session) readYesNo(question string) (bool, error) {
	s.println(question)

	for {
		line, err := s.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		s.println(`Enter "y" for yes or "n" for no`)
	}
}

func (s *Session) readEmail() (string, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		if hotel.ValidEmail(line) {
			return line, nil
		}

		s.println("It is not a valid email. Please enter like example@mail.com")
	}
}

func (s *Session) readName(kind string) (string, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		if letterRe.MatchString(line) {
			return line, nil
		}

		s.printf("Your %s name should have at least one letter.\n", kind)
	}
}

// readDate reads a MM/DD/YYYY date that is not before today.
func (s *Session) readDate() (time.Time, error) {
	today := hotel.Day(s.now())

	for {
		line, err := s.readLine()
		if err != nil {
			return time.Time{}, err
		}

		date, err := time.Parse(inputDateLayout, line)
		if err != nil {
			s.println("Reenter the date in format mm/dd/yyyy")

			continue
		}

		if date.Before(today) {
			s.println("This date is in the past. Please reenter the date")

			continue
		}

		return date, nil
	}
}

func (s *Session) readStayDates() (time.Time, time.Time, error) {
	for {
		s.println("Enter check-in date in format mm/dd/yyyy. Example: 05/13/2023")

		checkIn, err := s.readDate()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}

		s.println("Enter check-out date in format mm/dd/yyyy. Example: 05/15/2023")

		checkOut, err := s.readDate()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}

		if checkIn.Before(checkOut) {
			return checkIn, checkOut, nil
		}

		s.println("Your check-in date must be earlier than the check-out date. Please reenter dates")
	}
}

func (s *Session) readRoomNumberToBook(available []*hotel.Room) (string, error) {
	s.println("Please enter which room to book. (Room number)")

	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		if !digitsRe.MatchString(line) {
			s.println("Room number should be an integer number")

			continue
		}

		for _, room := range available {
			if room.Number == line {
				return line, nil
			}
		}

		s.println("The room you picked is actually not available. Please enter a room number from the list above")
	}
}

// readNewRoomNumber rejects numbers already entered in the current batch.
func (s *Session) readNewRoomNumber(batch []*hotel.Room) (string, error) {
	s.println("Enter room number")

	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		if !digitsRe.MatchString(line) {
			s.println("Room number should be an integer number")

			continue
		}

		duplicate := false

		for _, room := range batch {
			if room.Number == line {
				duplicate = true

				break
			}
		}

		if duplicate {
			s.printf("You have already added a room with room number %s\n", line)

			continue
		}

		return line, nil
	}
}

func (s *Session) readRoomType() (hotel.RoomType, error) {
	s.println(`Choose room type. "s" for single or "d" for double or "f" for free.`)

	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}

		roomType, err := hotel.ParseRoomType(line)
		if err == nil {
			return roomType, nil
		}

		s.println(`Enter "s" for single or "d" for double or "f" for free`)
	}
}

func (s *Session) readRoomPrice() (float64, error) {
	s.println("Enter room price")

	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		price, err := strconv.ParseFloat(line, 64)
		if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
			s.println("Room price should be a non-negative decimal number")

			continue
		}

		return price, nil
	}
}
