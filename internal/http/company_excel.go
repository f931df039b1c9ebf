package httpapi

import (
	"bytes"
	"fmt"
	"strconv"

	"heatwise-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

// CompanyExportHeader lists the exported columns. The password column is
// deliberately absent: credentials have no business in a spreadsheet.
var CompanyExportHeader = []string{
	"ID",
	"Name",
	"Tax ID",
	"Plan ID",
	"Phone",
	"Email",
}

// GenerateCompanyExport renders the company list as an .xlsx workbook.
func GenerateCompanyExport(companies []domain.Company) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Companies"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range CompanyExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	_ = f.SetColWidth(sheetName, "A", "F", 20)

	for row, c := range companies {
		values := []any{c.ID, c.Name, c.TaxID, c.PlanID, c.Phone, c.Email}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write row %s: %w", strconv.Itoa(row+2), err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
