package migration_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/logger"
	"github.com/avstrong/hotel/internal/migration"
	"github.com/avstrong/hotel/internal/storage/memory"
)

func TestUpSeedsDemoRooms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l := logger.Discard()
	db := memory.New(memory.Config{L: l})

	require.NoError(t, migration.Up(ctx, l, db))

	rooms, err := db.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 5)

	for _, room := range rooms {
		if room.Type == hotel.RoomTypeFree {
			assert.Zero(t, room.Price)
		}
	}

	// Running it again skips the existing rooms.
	require.NoError(t, migration.Up(ctx, l, db))

	rooms, err = db.Rooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 5)
}

var errStorageDown = errors.New("storage down")

type failingStorage struct {
	*memory.DB
	saveErr   error
	commitErr error
}

func (s *failingStorage) SaveRoom(ctx context.Context, room *hotel.Room) (bool, error) {
	if s.saveErr != nil {
		return false, s.saveErr
	}

	return s.DB.SaveRoom(ctx, room)
}

func (s *failingStorage) CommitTransaction(ctx context.Context) error {
	if s.commitErr != nil {
		return s.commitErr
	}

	return s.DB.CommitTransaction(ctx)
}

func TestUpReportsCommitFailure(t *testing.T) {
	t.Parallel()

	logs := &bytes.Buffer{}
	l := logger.New(log.New(logs, "", 0))
	db := &failingStorage{DB: memory.New(memory.Config{L: l}), commitErr: errStorageDown}

	err := migration.Up(context.Background(), l, db)
	require.ErrorIs(t, err, errStorageDown)

	assert.Contains(t, logs.String(), "Could not commit migration transaction")
	assert.NotContains(t, logs.String(), "has been committed")
}

func TestUpRollsBackOnSaveFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logs := &bytes.Buffer{}
	l := logger.New(log.New(logs, "", 0))
	db := &failingStorage{DB: memory.New(memory.Config{L: l}), saveErr: errStorageDown}

	err := migration.Up(ctx, l, db)
	require.ErrorIs(t, err, errStorageDown)

	assert.Contains(t, logs.String(), "Migration transaction has been rolled back after error")
	assert.NotContains(t, logs.String(), "has been committed")

	rooms, err := db.Rooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}
