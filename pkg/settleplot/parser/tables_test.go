package parser

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// writeSheet fills sheetName with rows starting at A1.
func writeSheet(t *testing.T, f *excelize.File, sheetName string, rows [][]interface{}) {
	t.Helper()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow(sheetName, cell, &r); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
}

// reopen saves f to a temp file and opens it again, as the CLI would.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestLoadTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	writeSheet(t, f, "Sheet1", [][]interface{}{
		{"note", "date", "height_m", "settlement_cm"},
		{"x", "01-Jan-24", 10.0, 0.0},
		{nil, nil, nil, nil},
		{"y", "03-Jan-24", 9.5, -1.2},
	})

	table, err := LoadTable(reopen(t, f), "Sheet1", DefaultDateLayout)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Sheet != "Sheet1" {
		t.Errorf("Expected sheet Sheet1, got %q", table.Sheet)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}

	first, second := table.Rows[0], table.Rows[1]
	if !first.Date.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected first date %v", first.Date)
	}
	if first.HeightM != 10.0 || first.SettlementCM != 0.0 {
		t.Errorf("Unexpected first values %+v", first)
	}
	if second.Row != 4 {
		t.Errorf("Expected row 4, got %d", second.Row)
	}
	if second.HeightM != 9.5 || second.SettlementCM != -1.2 {
		t.Errorf("Unexpected second values %+v", second)
	}
}

func TestLoadTableHeaderBelowBlankRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "B3", "settlement_cm")
	f.SetCellValue("Sheet1", "C3", " date ")
	f.SetCellValue("Sheet1", "D3", "height_m")
	f.SetCellValue("Sheet1", "B4", -0.5)
	f.SetCellValue("Sheet1", "C4", time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC))
	f.SetCellValue("Sheet1", "D4", 12.25)

	table, err := LoadTable(reopen(t, f), "Sheet1", DefaultDateLayout)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(table.Rows))
	}
	got := table.Rows[0]
	if !got.Date.Equal(time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected date %v", got.Date)
	}
	if got.HeightM != 12.25 || got.SettlementCM != -0.5 {
		t.Errorf("Unexpected values %+v", got)
	}
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]interface{}
		expected error
	}{
		{
			name:     "empty sheet",
			rows:     nil,
			expected: ErrMissingColumn,
		},
		{
			name:     "missing settlement",
			rows:     [][]interface{}{{"date", "height_m"}, {"01-Jan-24", 1.0}},
			expected: ErrMissingColumn,
		},
		{
			name:     "bad date",
			rows:     [][]interface{}{{"date", "height_m", "settlement_cm"}, {"2024-01-01", 1.0, 0.0}},
			expected: ErrInvalidDate,
		},
		{
			name:     "bad number",
			rows:     [][]interface{}{{"date", "height_m", "settlement_cm"}, {"01-Jan-24", "tall", 0.0}},
			expected: ErrInvalidNumber,
		},
		{
			name:     "header only",
			rows:     [][]interface{}{{"date", "height_m", "settlement_cm"}},
			expected: ErrNoRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := excelize.NewFile()
			defer f.Close()
			writeSheet(t, f, "Sheet1", tt.rows)

			_, err := LoadTable(reopen(t, f), "Sheet1", DefaultDateLayout)
			if !errors.Is(err, tt.expected) {
				t.Errorf("LoadTable error = %v, expected %v", err, tt.expected)
			}
		})
	}
}

func TestSheetNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "P-03")
	if _, err := f.NewSheet("P-01"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if _, err := f.NewSheet("P-02"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	names := SheetNames(reopen(t, f))
	expected := []string{"P-03", "P-01", "P-02"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("SheetNames()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}
