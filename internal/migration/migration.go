package migration

import (
	"context"
	"fmt"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
)

type storage interface {
	BeginTransaction(ctx context.Context) (context.Context, error)
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error
	SaveRoom(ctx context.Context, room *hotel.Room) (bool, error)
}

type demoRoom struct {
	number   string
	price    float64
	roomType hotel.RoomType
}

var demoRooms = []demoRoom{
	{number: "101", price: 100, roomType: hotel.RoomTypeSingle},
	{number: "102", price: 100, roomType: hotel.RoomTypeSingle},
	{number: "201", price: 180, roomType: hotel.RoomTypeDouble},
	{number: "202", price: 180, roomType: hotel.RoomTypeDouble},
	{number: "301", price: 0, roomType: hotel.RoomTypeFree},
}

// Up registers the demo rooms in one transaction. Rooms that already exist
// are skipped.
func Up(ctx context.Context, l *logger.Logger, storage storage) (err error) {
	rooms := make([]*hotel.Room, 0, len(demoRooms))

	for _, d := range demoRooms {
		room, err := hotel.NewRoom(d.number, d.price, d.roomType)
		if err != nil {
			return fmt.Errorf("build demo room %s: %w", d.number, err)
		}

		rooms = append(rooms, room)
	}

	ctx, err = storage.BeginTransaction(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := storage.RollbackTransaction(ctx); rbErr != nil {
				l.LogErrorf("Could not rollback migration transaction after panic %v: %v", p, rbErr.Error())
			} else {
				l.LogInfo("Migration transaction has been rolled back after panic")
			}

			panic(p)
		}

		if err != nil {
			if rbErr := storage.RollbackTransaction(ctx); rbErr != nil {
				l.LogErrorf("Could not rollback migration transaction after error %v", rbErr.Error())
			} else {
				l.LogInfo("Migration transaction has been rolled back after error")
			}

			return
		}

		if err = storage.CommitTransaction(ctx); err != nil {
			l.LogErrorf("Could not commit migration transaction, err %v", err.Error())

			err = fmt.Errorf("commit transaction: %w", err)

			return
		}

		l.LogInfo("Migration transaction has been committed")
	}()

	for _, room := range rooms {
		added, err := storage.SaveRoom(ctx, room)
		if err != nil {
			return fmt.Errorf("save room %s to storage: %w", room.Number, err)
		}

		if !added {
			l.LogInfo("Demo room %s already exists, skipped", room.Number)
		}
	}

	return nil
}
