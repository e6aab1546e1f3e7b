package output

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXSheet is the sheet the workbook is written to
const XLSXSheet = "Sheet1"

// XLSXFormatter writes the report as an Excel workbook.
// Columns: item, detail, amount (numeric), currency.
type XLSXFormatter struct{}

// Format returns the format type
func (f *XLSXFormatter) Format() Format {
	return FormatXLSX
}

// Render writes the workbook to w
func (f *XLSXFormatter) Render(w io.Writer, r *Report) error {
	file := excelize.NewFile()
	defer file.Close()

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	amountStyle, err := file.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return err
	}

	rowNum := 1
	set := func(col int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		return file.SetCellValue(XLSXSheet, cell, v)
	}
	writeLine := func(l Line, style int) error {
		amount, _ := l.Amount.Round(2).Float64()
		for col, v := range []interface{}{l.Label, l.Detail, amount, l.Currency.String()} {
			if err := set(col+1, v); err != nil {
				return err
			}
		}
		cell, _ := excelize.CoordinatesToCellName(3, rowNum)
		if err := file.SetCellStyle(XLSXSheet, cell, cell, amountStyle); err != nil {
			return err
		}
		if style != 0 {
			a, _ := excelize.CoordinatesToCellName(1, rowNum)
			if err := file.SetCellStyle(XLSXSheet, a, a, style); err != nil {
				return err
			}
		}
		rowNum++
		return nil
	}

	if err := set(1, r.Title); err != nil {
		return err
	}
	if err := file.SetCellStyle(XLSXSheet, "A1", "A1", bold); err != nil {
		return err
	}
	if err := set(2, r.Subtitle); err != nil {
		return err
	}
	rowNum += 2

	for col, h := range []string{"Item", "Detail", "Amount", "Currency"} {
		if err := set(col+1, h); err != nil {
			return err
		}
	}
	if err := file.SetCellStyle(XLSXSheet, "A3", "D3", bold); err != nil {
		return err
	}
	rowNum++

	for _, l := range r.Lines {
		if err := writeLine(l, 0); err != nil {
			return err
		}
	}
	for _, l := range r.Totals {
		if err := writeLine(l, bold); err != nil {
			return err
		}
	}
	for _, n := range r.Notes {
		rowNum++
		if err := set(1, n); err != nil {
			return err
		}
	}

	if err := file.SetColWidth(XLSXSheet, "A", "B", 36); err != nil {
		return err
	}
	if err := file.SetColWidth(XLSXSheet, "C", "C", 20); err != nil {
		return err
	}
	return file.Write(w)
}
