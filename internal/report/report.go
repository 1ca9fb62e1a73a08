package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/avstrong/hotel/internal/hotel"
)

const (
	SheetRooms        = "Rooms"
	SheetReservations = "Reservations"
	SheetCustomers    = "Customers"

	dateLayout = "01/02/2006"
)

type Data struct {
	Rooms        []*hotel.Room
	Reservations []*hotel.Reservation
	Customers    []*hotel.Customer
}

// Export writes data into a new workbook under dir and returns its path.
func Export(dir string, data Data, now time.Time) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRooms); err != nil {
		return "", fmt.Errorf("rename default sheet: %w", err)
	}

	for _, name := range []string{SheetReservations, SheetCustomers} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	roomRows := make([][]any, 0, len(data.Rooms))
	for _, room := range data.Rooms {
		roomRows = append(roomRows, []any{room.Number, string(room.Type), room.Price})
	}

	if err := writeSheet(f, SheetRooms, []string{"RoomNumber", "RoomType", "Price"}, roomRows); err != nil {
		return "", err
	}

	reservationRows := make([][]any, 0, len(data.Reservations))
	for _, r := range data.Reservations {
		reservationRows = append(reservationRows, []any{
			r.ID.String(),
			r.Customer.Email,
			r.Room.Number,
			string(r.Room.Type),
			r.CheckIn.Format(dateLayout),
			r.CheckOut.Format(dateLayout),
			int(r.CheckOut.Sub(r.CheckIn).Hours() / 24), //nolint:gomnd
			r.Room.Price,
		})
	}

	reservationHeaders := []string{
		"ReservationID", "CustomerEmail", "RoomNumber", "RoomType",
		"CheckinDate", "CheckoutDate", "NumberOfNights", "Price",
	}

	if err := writeSheet(f, SheetReservations, reservationHeaders, reservationRows); err != nil {
		return "", err
	}

	customerRows := make([][]any, 0, len(data.Customers))
	for _, c := range data.Customers {
		customerRows = append(customerRows, []any{c.FirstName, c.LastName, c.Email})
	}

	if err := writeSheet(f, SheetCustomers, []string{"FirstName", "LastName", "EmailAddress"}, customerRows); err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("reservations-%s.xlsx", now.Format("20060102-150405")))

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save report to %s: %w", path, err)
	}

	return path, nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", i+1, err)
		}

		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set header %s on %s: %w", header, sheet, err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2) //nolint:gomnd
		if err != nil {
			return fmt.Errorf("row cell %d: %w", i+2, err) //nolint:gomnd
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("set row %d on %s: %w", i+2, sheet, err) //nolint:gomnd
		}
	}

	return nil
}
