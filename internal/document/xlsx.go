package document

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the report.
const SheetName = "relatorio"

// XLSXRenderer writes the report to a single worksheet, labels in column A
// and values in column B.
type XLSXRenderer struct{}

func (XLSXRenderer) Format() string { return "xlsx" }
func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (XLSXRenderer) Extension() string { return "xlsx" }

func (XLSXRenderer) Render(lines []Line) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	for i, l := range lines {
		row := i + 1
		switch l.Style {
		case StyleSpacer:
		case StyleTitle:
			if err := setCell(f, 1, row, l.Text); err != nil {
				return nil, err
			}
		default:
			label, value := l.Label, l.Value
			if label == "" {
				label = l.Text
			}
			if err := setCell(f, 1, row, label); err != nil {
				return nil, err
			}
			if err := setCell(f, 2, row, value); err != nil {
				return nil, err
			}
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 40); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value string) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, name, value)
}
