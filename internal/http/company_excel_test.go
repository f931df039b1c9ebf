package httpapi

import (
	"bytes"
	"testing"

	"heatwise-api/internal/domain"

	"github.com/xuri/excelize/v2"
)

func TestGenerateCompanyExport(t *testing.T) {
	companies := []domain.Company{
		{ID: 1, Name: "Acme", TaxID: "123", PlanID: domain.PlanBasic, Phone: "555", Email: "a@x.com", Password: "s3cr3t"},
		{ID: 2, Name: "Globex", TaxID: "456", PlanID: domain.PlanPro, Phone: "556", Email: "b@x.com", Password: "hunter2"},
	}

	data, err := GenerateCompanyExport(companies)
	if err != nil {
		t.Fatalf("failed to generate export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Companies")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	for i, want := range CompanyExportHeader {
		if rows[0][i] != want {
			t.Fatalf("header column %d: got %q, want %q", i, rows[0][i], want)
		}
	}
	if rows[1][1] != "Acme" || rows[2][1] != "Globex" {
		t.Fatalf("unexpected data rows: %v", rows[1:])
	}

	// Credentials never leave storage via the export.
	for _, row := range rows {
		for _, cell := range row {
			if cell == "s3cr3t" || cell == "hunter2" {
				t.Fatalf("password leaked into export: %v", row)
			}
		}
	}
}

func TestGenerateCompanyExportEmpty(t *testing.T) {
	data, err := GenerateCompanyExport(nil)
	if err != nil {
		t.Fatalf("failed to generate empty export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Companies")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
