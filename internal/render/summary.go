package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// buildSummaryWorkbook writes one worksheet per provider with the job and
// adjustment detail behind that provider's invoices.
func buildSummaryWorkbook(in SummaryInput) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 44}) // accounting format
	if err != nil {
		return nil, err
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	for _, sheet := range in.Sheets {
		if _, err := f.NewSheet(sheet.SheetName); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.SheetName, err)
		}
		if err := writeSummarySheet(f, sheet, in, headerStyle, moneyStyle, boldStyle); err != nil {
			return nil, err
		}
	}

	// excelize seeds every workbook with a default sheet we never use.
	if len(in.Sheets) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, sheet SummarySheet, in SummaryInput, headerStyle, moneyStyle, boldStyle int) error {
	name := sheet.SheetName

	f.SetCellValue(name, "A1", in.Title)
	f.SetCellStyle(name, "A1", "A1", boldStyle)
	title := sheet.ProviderName
	if sheet.ProviderLedgerCode != "" {
		title = fmt.Sprintf("%s (%s)", sheet.ProviderName, sheet.ProviderLedgerCode)
	}
	f.SetCellValue(name, "A2", title)

	headers := []string{"Invoice #", "Account #", "Shipped To", "Job #", "Patient", "Frame Style", "Ship Date", "Lens", "Frame", "Total"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 4)
		if err != nil {
			return err
		}
		f.SetCellValue(name, cell, h)
	}
	f.SetCellStyle(name, "A4", "J4", headerStyle)

	row := 5
	firstDataRow := row
	for _, r := range sheet.Rows {
		f.SetCellValue(name, fmt.Sprintf("A%d", row), r.InvoiceNo)
		f.SetCellValue(name, fmt.Sprintf("B%d", row), r.AccountNo)
		f.SetCellValue(name, fmt.Sprintf("C%d", row), r.ShippedTo)
		f.SetCellValue(name, fmt.Sprintf("D%d", row), r.JobID)
		f.SetCellValue(name, fmt.Sprintf("E%d", row), r.PatientName)
		f.SetCellValue(name, fmt.Sprintf("F%d", row), r.FrameStyle)
		f.SetCellValue(name, fmt.Sprintf("G%d", row), r.ShipDate)
		lens, _ := r.LensPrice.Float64()
		frame, _ := r.FramePrice.Float64()
		total, _ := r.TotalPrice.Float64()
		f.SetCellValue(name, fmt.Sprintf("H%d", row), lens)
		f.SetCellValue(name, fmt.Sprintf("I%d", row), frame)
		f.SetCellValue(name, fmt.Sprintf("J%d", row), total)
		row++
	}
	lastDataRow := row - 1

	if len(sheet.Rows) > 0 {
		f.SetCellStyle(name, fmt.Sprintf("H%d", firstDataRow), fmt.Sprintf("J%d", lastDataRow), moneyStyle)
	}

	adjStart := 0
	if len(sheet.AdjustmentRows) > 0 {
		row++
		f.SetCellValue(name, fmt.Sprintf("A%d", row), "Adjustments")
		f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), boldStyle)
		row++
		adjStart = row
		for _, a := range sheet.AdjustmentRows {
			f.SetCellValue(name, fmt.Sprintf("A%d", row), a.InvoiceNo)
			f.SetCellValue(name, fmt.Sprintf("B%d", row), a.AccountNo)
			f.SetCellValue(name, fmt.Sprintf("C%d", row), a.ShippedTo)
			f.SetCellValue(name, fmt.Sprintf("D%d", row), a.Reference)
			f.SetCellValue(name, fmt.Sprintf("E%d", row), a.Description)
			f.SetCellValue(name, fmt.Sprintf("F%d", row), a.Kind)
			amount, _ := a.Amount.Float64()
			f.SetCellValue(name, fmt.Sprintf("J%d", row), amount)
			row++
		}
		f.SetCellStyle(name, fmt.Sprintf("J%d", adjStart), fmt.Sprintf("J%d", row-1), moneyStyle)
	}

	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "TOTAL")
	if lastDataRow >= firstDataRow {
		totalFormula := fmt.Sprintf("SUM(J%d:J%d)", firstDataRow, lastDataRow)
		if adjStart > 0 {
			totalFormula += fmt.Sprintf("+SUM(J%d:J%d)", adjStart, row-2)
		}
		if err := f.SetCellFormula(name, fmt.Sprintf("J%d", row), totalFormula); err != nil {
			return err
		}
	}
	f.SetCellStyle(name, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), boldStyle)
	f.SetCellStyle(name, fmt.Sprintf("J%d", row), fmt.Sprintf("J%d", row), moneyStyle)

	row++
	f.SetCellValue(name, fmt.Sprintf("A%d", row), "TOTAL PATIENTS")
	f.SetCellValue(name, fmt.Sprintf("B%d", row), sheet.PatientCount)

	widths := []float64{12, 10, 28, 10, 22, 22, 12, 11, 11, 12}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, w); err != nil {
			return err
		}
	}
	return nil
}
