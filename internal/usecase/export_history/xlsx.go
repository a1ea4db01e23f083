package export_history

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

const sheetName = "Historial"

var header = []string{
	"ID", "Habitación", "Cliente", "DNI", "Entrada", "Salida",
	"Noches", "Precio noche", "Total", "Estado", "Check-in", "Check-out",
}

func writeXLSX(reservations []*domain.Reservation) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	for c, v := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return nil, err
		}
	}

	for r, res := range reservations {
		clientName := res.ClientName
		if clientName == "" {
			clientName = domain.UnknownClientName
		}
		values := []interface{}{
			res.ID,
			res.RoomNumber,
			clientName,
			res.ClientDNI,
			res.EntryDate.String(),
			res.ExitDate.String(),
			res.Nights(),
			res.EffectiveNightlyRate().InexactFloat64(),
			res.TotalPrice.InexactFloat64(),
			string(res.Status),
			formatTimestamp(res.CheckInAt),
			formatTimestamp(res.CheckOutAt),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 8)
	_ = f.SetColWidth(sheetName, "B", "B", 12)
	_ = f.SetColWidth(sheetName, "C", "C", 30)
	_ = f.SetColWidth(sheetName, "D", "D", 14)
	_ = f.SetColWidth(sheetName, "E", "F", 12)
	_ = f.SetColWidth(sheetName, "G", "G", 8)
	_ = f.SetColWidth(sheetName, "H", "I", 14)
	_ = f.SetColWidth(sheetName, "J", "J", 12)
	_ = f.SetColWidth(sheetName, "K", "L", 18)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheetName, "A1", "L1", headerStyle)

	// денежные колонки с двумя знаками
	moneyStyle, _ := f.NewStyle(&excelize.Style{NumFmt: 2})
	if len(reservations) > 0 {
		last, _ := excelize.CoordinatesToCellName(9, len(reservations)+1)
		_ = f.SetCellStyle(sheetName, "H2", last, moneyStyle)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
