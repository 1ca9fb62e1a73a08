package hotel

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeFree   RoomType = "FREE"
)

// ParseRoomType accepts the full type name or its first letter, in any case.
func ParseRoomType(s string) (RoomType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S", string(RoomTypeSingle):
		return RoomTypeSingle, nil
	case "D", string(RoomTypeDouble):
		return RoomTypeDouble, nil
	case "F", string(RoomTypeFree):
		return RoomTypeFree, nil
	}

	return "", fmt.Errorf("room type %q: %w", s, ErrUnknownRoomType)
}

func (t RoomType) valid() bool {
	return t == RoomTypeSingle || t == RoomTypeDouble || t == RoomTypeFree
}

type Room struct {
	Number string   `json:"number"`
	Price  float64  `json:"price"`
	Type   RoomType `json:"type"`
}

var roomNumberRe = regexp.MustCompile(`^[0-9]+$`)

func NewRoom(number string, price float64, roomType RoomType) (*Room, error) {
	inputErr := newInputError()

	if !roomNumberRe.MatchString(number) {
		inputErr.addError("room.number", "room number should be an integer number")
	}

	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		inputErr.addError("room.price", "room price must be a non-negative number")
	}

	if !roomType.valid() {
		inputErr.addError("room.type", "room type must be one of SINGLE, DOUBLE, FREE")
	}

	if inputErr.fieldsCount() > 0 {
		return nil, inputErr
	}

	if roomType == RoomTypeFree {
		price = 0
	}

	return &Room{
		Number: number,
		Price:  price,
		Type:   roomType,
	}, nil
}

func (r *Room) IsFree() bool {
	return r.Type == RoomTypeFree
}

// Key identifies a room for duplicate detection. Number and type both count.
func (r *Room) Key() string {
	return r.Number + "_" + string(r.Type)
}

func (r *Room) Equal(other *Room) bool {
	return r.Number == other.Number && r.Type == other.Type
}

func (r *Room) String() string {
	return fmt.Sprintf("Room %s, %s, price %.2f", r.Number, r.Type, r.Price)
}

var (
	emailRe  = regexp.MustCompile(`\b[a-zA-Z0-9._%-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}\b`)
	letterRe = regexp.MustCompile(`[a-zA-Z]`)
)

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewCustomer(email, firstName, lastName string) (*Customer, error) {
	inputErr := newInputError()

	if !ValidEmail(email) {
		inputErr.addError("customer.email", "provide valid email like example@mail.com")
	}

	if !letterRe.MatchString(firstName) {
		inputErr.addError("customer.firstName", "first name should have at least one letter")
	}

	if !letterRe.MatchString(lastName) {
		inputErr.addError("customer.lastName", "last name should have at least one letter")
	}

	if inputErr.fieldsCount() > 0 {
		return nil, inputErr
	}

	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}, nil
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s %s <%s>", c.FirstName, c.LastName, c.Email)
}

type Reservation struct {
	ID        uuid.UUID `json:"id"`
	Customer  *Customer `json:"customer"`
	Room      *Room     `json:"room"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

// Key identifies a reservation by room and exact dates. The customer is not
// part of it, so nobody can book the same room for the same pair twice.
func (r *Reservation) Key() string {
	return ReservationKey(r.Room, r.CheckIn, r.CheckOut)
}

func ReservationKey(room *Room, checkIn, checkOut time.Time) string {
	return fmt.Sprintf("%s_%s_%s", room.Key(), checkIn.Format(dayLayout), checkOut.Format(dayLayout))
}

func (r *Reservation) String() string {
	return fmt.Sprintf(
		"Reservation %s: %s, %s, from %s to %s",
		r.ID,
		r.Customer,
		r.Room,
		r.CheckIn.Format(dayLayout),
		r.CheckOut.Format(dayLayout),
	)
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
