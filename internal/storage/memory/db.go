package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

var (
	ErrTransactionIDNotFoundInCtx = errors.New("no transaction id found in ctx")
	ErrTransactionNotFound        = errors.New("transaction not found")
)

type Config struct {
	L *logger.Logger
}

type transaction struct {
	id              string
	rollbackActions []func()
}

// DB keeps rooms, reservations and customers in insertion order. Every write
// checks for a duplicate and inserts under the same lock.
type DB struct {
	mu              sync.Mutex
	l               *logger.Logger
	rooms           []*hotel.Room
	roomKeys        map[string]struct{}
	reservations    []*hotel.Reservation
	reservationKeys map[string]struct{}
	customers       []*hotel.Customer
	customerEmails  map[string]*hotel.Customer
	transactions    map[string]*transaction
	nextTrxID       int64
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:               conf.L,
		roomKeys:        make(map[string]struct{}),
		reservationKeys: make(map[string]struct{}),
		customerEmails:  make(map[string]*hotel.Customer),
		transactions:    make(map[string]*transaction),
	}
}

func (db *DB) BeginTransaction(ctx context.Context) (context.Context, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	trxID := fmt.Sprintf("trx-%d", db.nextTrxID)
	db.nextTrxID++

	db.transactions[trxID] = &transaction{
		id:              trxID,
		rollbackActions: []func(){},
	}

	return withTransactionID(ctx, trxID), nil
}

func (db *DB) CommitTransaction(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	trx, err := db.transactionFromContext(ctx)
	if err != nil {
		return err
	}

	delete(db.transactions, trx.id)

	return nil
}

func (db *DB) RollbackTransaction(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	trx, err := db.transactionFromContext(ctx)
	if err != nil {
		return err
	}

	for i := len(trx.rollbackActions) - 1; i >= 0; i-- {
		trx.rollbackActions[i]()
	}

	delete(db.transactions, trx.id)

	db.l.LogInfo("Transaction %s has been rolled back, %d writes undone", trx.id, len(trx.rollbackActions))

	return nil
}

func (db *DB) transactionFromContext(ctx context.Context) (*transaction, error) {
	trxID, ok := transactionIDFromContext(ctx)
	if !ok || trxID == "" {
		return nil, ErrTransactionIDNotFoundInCtx
	}

	trx, exists := db.transactions[trxID]
	if !exists {
		return nil, fmt.Errorf("transaction %s not found: %w", trxID, ErrTransactionNotFound)
	}

	return trx, nil
}

// onRollback registers undo for the transaction in ctx, if any. Writes outside
// a transaction are final.
func (db *DB) onRollback(ctx context.Context, action func()) error {
	if _, ok := transactionIDFromContext(ctx); !ok {
		return nil
	}

	trx, err := db.transactionFromContext(ctx)
	if err != nil {
		return err
	}

	trx.rollbackActions = append(trx.rollbackActions, action)

	return nil
}

func (db *DB) SaveRoom(ctx context.Context, room *hotel.Room) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := room.Key()
	if _, exists := db.roomKeys[key]; exists {
		return false, nil
	}

	if err := db.onRollback(ctx, func() {
		delete(db.roomKeys, key)
		db.rooms = slices.DeleteFunc(db.rooms, func(r *hotel.Room) bool { return r.Key() == key })
	}); err != nil {
		return false, err
	}

	db.roomKeys[key] = struct{}{}
	db.rooms = append(db.rooms, room)

	return true, nil
}

// GetRoomByNumber returns the first room registered under number, whatever its type.
func (db *DB) GetRoomByNumber(_ context.Context, number string) (*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, room := range db.rooms {
		if room.Number == number {
			return room, nil
		}
	}

	return nil, hotel.ErrRecordNotFound
}

func (db *DB) Rooms(_ context.Context) ([]*hotel.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return slices.Clone(db.rooms), nil
}

func (db *DB) SaveReservation(ctx context.Context, reservation *hotel.Reservation) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := reservation.Key()
	if _, exists := db.reservationKeys[key]; exists {
		return fmt.Errorf("room %s is already reserved for these days: %w", reservation.Room.Number, hotel.ErrAlreadyExists)
	}

	if err := db.onRollback(ctx, func() {
		delete(db.reservationKeys, key)
		db.reservations = slices.DeleteFunc(db.reservations, func(r *hotel.Reservation) bool { return r.Key() == key })
	}); err != nil {
		return err
	}

	db.reservationKeys[key] = struct{}{}
	db.reservations = append(db.reservations, reservation)

	return nil
}

func (db *DB) Reservations(_ context.Context) ([]*hotel.Reservation, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return slices.Clone(db.reservations), nil
}

func (db *DB) SaveCustomer(ctx context.Context, customer *hotel.Customer) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	email := customer.Email
	if _, exists := db.customerEmails[email]; exists {
		return fmt.Errorf("customer with email %s is already registered: %w", email, hotel.ErrAlreadyExists)
	}

	if err := db.onRollback(ctx, func() {
		delete(db.customerEmails, email)
		db.customers = slices.DeleteFunc(db.customers, func(c *hotel.Customer) bool { return c.Email == email })
	}); err != nil {
		return err
	}

	db.customerEmails[email] = customer
	db.customers = append(db.customers, customer)

	return nil
}

func (db *DB) GetCustomer(_ context.Context, email string) (*hotel.Customer, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	customer, exists := db.customerEmails[email]
	if !exists {
		return nil, hotel.ErrRecordNotFound
	}

	return customer, nil
}

func (db *DB) Customers(_ context.Context) ([]*hotel.Customer, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return slices.Clone(db.customers), nil
}
