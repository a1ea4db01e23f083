package render_invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/usecase/get_folio"
)

const (
	pageWidth = 190.0
	font      = "Arial"
)

var folioStatusLabels = map[domain.FolioStatus]string{
	domain.FolioUnpaid:  "PENDIENTE DE PAGO",
	domain.FolioPartial: "PAGO PARCIAL",
	domain.FolioPaid:    "PAGADO",
}

type invoiceWriter struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	currency string
}

func (w *invoiceWriter) money(d decimal.Decimal) string {
	return fmt.Sprintf("%s %s", w.currency, d.StringFixed(2))
}

func (w *invoiceWriter) cell(width, height float64, text, border string, ln int, align string, fill bool) {
	w.pdf.CellFormat(width, height, w.tr(text), border, ln, align, fill, 0, "")
}

func (w *invoiceWriter) section(title string) {
	w.pdf.Ln(4)
	w.pdf.SetFillColor(240, 240, 240)
	w.pdf.SetFont(font, "B", 12)
	w.cell(pageWidth, 8, title, "1", 1, "L", true)
}

// renderPDF рисует счет на одной странице A4; строки переносятся на новые страницы автоматически
func renderPDF(hotel Hotel, f *get_folio.Folio, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &invoiceWriter{
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		currency: hotel.CurrencySymbol,
	}
	res := f.Reservation
	totals := f.Result

	// шапка
	pdf.SetFont(font, "B", 16)
	w.cell(pageWidth, 10, hotel.Name, "", 1, "C", false)
	pdf.SetFont(font, "", 10)
	for _, line := range []string{hotel.Address, hotel.Phone} {
		if line != "" {
			w.cell(pageWidth, 5, line, "", 1, "C", false)
		}
	}
	if hotel.TaxID != "" {
		w.cell(pageWidth, 5, "CUIT/NIF: "+hotel.TaxID, "", 1, "C", false)
	}
	pdf.Ln(3)
	pdf.SetFont(font, "B", 13)
	w.cell(pageWidth, 8, fmt.Sprintf("Cuenta de la reserva #%d", res.ID), "", 1, "C", false)
	pdf.SetFont(font, "", 9)
	w.cell(pageWidth, 5, "Emitida: "+issuedAt.Format("02/01/2006 15:04"), "", 1, "C", false)

	// гость и проживание
	w.section("Huésped y estadía")
	pdf.SetFont(font, "", 10)
	clientName := res.ClientName
	if clientName == "" {
		clientName = domain.UnknownClientName
	}
	w.cell(95, 7, "Cliente: "+clientName, "LB", 0, "L", false)
	w.cell(95, 7, "DNI: "+res.ClientDNI, "RB", 1, "L", false)
	w.cell(95, 7, "Habitación: "+res.RoomNumber, "LB", 0, "L", false)
	w.cell(95, 7, "Estado: "+string(res.Status), "RB", 1, "L", false)
	w.cell(95, 7, fmt.Sprintf("Entrada: %s", res.EntryDate), "LB", 0, "L", false)
	w.cell(95, 7, fmt.Sprintf("Salida: %s", res.ExitDate), "RB", 1, "L", false)

	// строки счета
	w.section("Detalle")
	pdf.SetFont(font, "B", 10)
	pdf.SetFillColor(200, 200, 200)
	w.cell(25, 7, "Fecha", "1", 0, "C", true)
	w.cell(85, 7, "Concepto", "1", 0, "C", true)
	w.cell(20, 7, "Cant.", "1", 0, "C", true)
	w.cell(30, 7, "Precio", "1", 0, "C", true)
	w.cell(30, 7, "Subtotal", "1", 1, "C", true)

	pdf.SetFont(font, "", 10)
	w.cell(25, 6, res.EntryDate.String(), "1", 0, "C", false)
	w.cell(85, 6, fmt.Sprintf("Alojamiento (%d noches)", totals.Nights), "1", 0, "L", false)
	w.cell(20, 6, fmt.Sprintf("%d", totals.Nights), "1", 0, "C", false)
	w.cell(30, 6, w.money(totals.NightlyRate), "1", 0, "R", false)
	w.cell(30, 6, w.money(totals.RoomSubtotal), "1", 1, "R", false)

	for _, c := range f.Consumptions {
		w.cell(25, 6, c.ConsumedOn.String(), "1", 0, "C", false)
		w.cell(85, 6, c.Concept, "1", 0, "L", false)
		w.cell(20, 6, fmt.Sprintf("%d", c.Quantity), "1", 0, "C", false)
		w.cell(30, 6, w.money(c.UnitPrice), "1", 0, "R", false)
		w.cell(30, 6, w.money(c.Subtotal()), "1", 1, "R", false)
	}

	// оплаты
	if len(f.Payments) > 0 {
		w.section("Pagos")
		pdf.SetFont(font, "B", 10)
		pdf.SetFillColor(200, 200, 200)
		w.cell(40, 7, "Fecha", "1", 0, "C", true)
		w.cell(40, 7, "Método", "1", 0, "C", true)
		w.cell(70, 7, "Nota", "1", 0, "C", true)
		w.cell(40, 7, "Monto", "1", 1, "C", true)

		pdf.SetFont(font, "", 10)
		for _, p := range f.Payments {
			note := ""
			if p.Note != nil {
				note = *p.Note
			}
			w.cell(40, 6, p.PaidAt.Format("02/01/2006"), "1", 0, "C", false)
			w.cell(40, 6, string(p.Method), "1", 0, "C", false)
			w.cell(70, 6, note, "1", 0, "L", false)
			w.cell(40, 6, w.money(p.Amount), "1", 1, "R", false)
		}
	}

	// итоги
	w.section("Resumen")
	pdf.SetFont(font, "", 11)
	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Total", totals.GrandTotal},
		{"Total a pagar", totals.Due},
		{"Pagado", totals.Paid},
		{"Saldo pendiente", totals.Outstanding},
	}
	for _, row := range rows {
		w.cell(150, 7, row.label, "1", 0, "R", false)
		w.cell(40, 7, w.money(row.amount), "1", 1, "R", false)
	}

	if totals.Status == domain.FolioPaid {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 220, 200)
	}
	pdf.SetFont(font, "B", 13)
	w.cell(pageWidth, 10, folioStatusLabels[totals.Status], "1", 1, "C", true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
