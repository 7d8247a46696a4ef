package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptData carries everything the payroll receipt renders.
type ReceiptData struct {
	EmployeeName string
	Month        int
	Year         int
	PlannedHours string
	PlannedPay   string
	WorkedHours  string
	WorkedPay    string
	Consumption  string
	Bonuses      string
	Deductions   string
	NetPay       string
}

// Receipt renders a one-page payroll receipt.
func Receipt(data ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Recibo de haberes")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Empleado: %s", data.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %02d/%d", data.Month, data.Year))
	pdf.Ln(10)

	rows := [][2]string{
		{"Horas planificadas", data.PlannedHours},
		{"Pago planificado", data.PlannedPay},
		{"Horas trabajadas", data.WorkedHours},
		{"Pago trabajado", data.WorkedPay},
		{"Consumos", data.Consumption},
		{"Bonificaciones", data.Bonuses},
		{"Descuentos", data.Deductions},
	}
	for _, row := range rows {
		pdf.Cell(80, 8, row[0])
		pdf.Cell(0, 8, row[1])
		pdf.Ln(7)
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(80, 8, "Neto a cobrar")
	pdf.Cell(0, 8, data.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// GridRow is one line of the monthly schedule grid.
type GridRow struct {
	EmployeeName string
	Date         string
	Shift        string
	Hours        string
	Pay          string
}

// ScheduleGrid renders the month's schedule as a table, one row per
// employee-day.
func ScheduleGrid(month, year int, rows []GridRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Planilla de turnos %02d/%d", month, year))
	pdf.Ln(12)

	widths := []float64{80, 30, 40, 25, 30}
	headers := []string{"Empleado", "Fecha", "Turno", "Horas", "Pago"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		cells := []string{row.EmployeeName, row.Date, row.Shift, row.Hours, row.Pay}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render schedule pdf: %w", err)
	}
	return buf.Bytes(), nil
}
