package report_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avstrong/hotel/internal/hotel"
	"github.com/avstrong/hotel/internal/report"
)

func TestExport(t *testing.T) {
	t.Parallel()

	single, err := hotel.NewRoom("101", 120, hotel.RoomTypeSingle)
	require.NoError(t, err)
	free, err := hotel.NewRoom("301", 0, hotel.RoomTypeFree)
	require.NoError(t, err)

	customer := &hotel.Customer{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
	id := uuid.New()

	data := report.Data{
		Rooms: []*hotel.Room{single, free},
		Reservations: []*hotel.Reservation{{
			ID:       id,
			Customer: customer,
			Room:     single,
			CheckIn:  time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		}},
		Customers: []*hotel.Customer{customer},
	}

	now := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)

	path, err := report.Export(t.TempDir(), data, now)
	require.NoError(t, err)
	assert.Contains(t, path, "reservations-20250101-093000.xlsx")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{report.SheetRooms, report.SheetReservations, report.SheetCustomers}, f.GetSheetList())

	rows, err := f.GetRows(report.SheetRooms)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"RoomNumber", "RoomType", "Price"}, rows[0])
	assert.Equal(t, "101", rows[1][0])
	assert.Equal(t, "FREE", rows[2][1])

	rows, err = f.GetRows(report.SheetReservations)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, id.String(), rows[1][0])
	assert.Equal(t, "jane@example.com", rows[1][1])
	assert.Equal(t, "01/10/2025", rows[1][4])
	assert.Equal(t, "01/12/2025", rows[1][5])
	assert.Equal(t, "2", rows[1][6])

	rows, err = f.GetRows(report.SheetCustomers)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Jane", "Doe", "jane@example.com"}, rows[1])
}

func TestExportEmpty(t *testing.T) {
	t.Parallel()

	path, err := report.Export(t.TempDir(), report.Data{}, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows(report.SheetReservations)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
