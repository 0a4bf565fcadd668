// Package xlsx renders a report workbook to an Excel document using
// excelize. One sheet per table, bold header row, two-decimal number
// format for amounts and a percent format for ratios.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"fintrack/internal/export"
	"fintrack/internal/report"
)

const (
	numberFormat  = "0.00"
	percentFormat = "0.00%"
)

type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

var _ export.Encoder = (*Encoder)(nil)

func (Encoder) Encode(wb report.Workbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	numFmt := numberFormat
	numberStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, fmt.Errorf("number style: %w", err)
	}
	pctFmt := percentFormat
	percentStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &pctFmt})
	if err != nil {
		return nil, fmt.Errorf("percent style: %w", err)
	}

	for _, table := range wb.Tables {
		if _, err := f.NewSheet(table.Name); err != nil {
			return nil, fmt.Errorf("sheet %s: %w", table.Name, err)
		}

		header := make([]any, len(table.Header))
		for i, h := range table.Header {
			header[i] = h
		}
		if err := f.SetSheetRow(table.Name, "A1", &header); err != nil {
			return nil, fmt.Errorf("sheet %s header: %w", table.Name, err)
		}
		if len(table.Header) > 0 {
			last, err := excelize.CoordinatesToCellName(len(table.Header), 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(table.Name, "A1", last, headerStyle); err != nil {
				return nil, fmt.Errorf("sheet %s header style: %w", table.Name, err)
			}
		}

		for ri, row := range table.Rows {
			for ci, cell := range row {
				axis, err := excelize.CoordinatesToCellName(ci+1, ri+2)
				if err != nil {
					return nil, err
				}
				switch cell.Kind {
				case report.CellNumber:
					v, _ := cell.Number.Round(2).Float64()
					if err := f.SetCellValue(table.Name, axis, v); err != nil {
						return nil, fmt.Errorf("sheet %s cell %s: %w", table.Name, axis, err)
					}
					if err := f.SetCellStyle(table.Name, axis, axis, numberStyle); err != nil {
						return nil, err
					}
				case report.CellPercent:
					v, _ := cell.Number.Float64()
					if err := f.SetCellValue(table.Name, axis, v); err != nil {
						return nil, fmt.Errorf("sheet %s cell %s: %w", table.Name, axis, err)
					}
					if err := f.SetCellStyle(table.Name, axis, axis, percentStyle); err != nil {
						return nil, err
					}
				default:
					if err := f.SetCellStr(table.Name, axis, cell.Text); err != nil {
						return nil, fmt.Errorf("sheet %s cell %s: %w", table.Name, axis, err)
					}
				}
			}
		}
	}

	// Drop the implicit default sheet so the workbook starts on the first
	// report table. A workbook with no tables keeps it; xlsx requires at
	// least one sheet.
	if len(wb.Tables) > 0 {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("drop default sheet: %w", err)
		}
		idx, err := f.GetSheetIndex(wb.Tables[0].Name)
		if err != nil {
			return nil, err
		}
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
