package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/settleplot-go/pkg/settleplot/models"
	"github.com/xuri/excelize/v2"
)

// Required column headers.
const (
	ColumnDate       = "date"
	ColumnHeight     = "height_m"
	ColumnSettlement = "settlement_cm"
)

// RequiredColumns lists the headers every sheet must provide.
var RequiredColumns = []string{ColumnDate, ColumnHeight, ColumnSettlement}

// LoadTable reads the measurements of a sheet.
// The first non-empty row is the header; rows below it with no values in the
// required columns are skipped. Extra columns are ignored.
func LoadTable(f *excelize.File, sheetName, dateLayout string) (models.Table, error) {
	table := models.Table{Sheet: sheetName}

	rows, err := readRows(f, sheetName)
	if err != nil {
		return table, err
	}

	headerIdx := findHeaderRow(rows)
	if headerIdx < 0 {
		return table, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(RequiredColumns, ", "))
	}

	cols, err := columnIndex(rows[headerIdx], RequiredColumns)
	if err != nil {
		return table, err
	}

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1

		dateCell := cellAt(row, cols[ColumnDate])
		heightCell := cellAt(row, cols[ColumnHeight])
		settlementCell := cellAt(row, cols[ColumnSettlement])
		if dateCell == "" && heightCell == "" && settlementCell == "" {
			continue
		}

		date, err := ParseDate(dateCell, dateLayout)
		if err != nil {
			return table, fmt.Errorf("row %d: %w", rowNum, err)
		}
		height, err := parseNumber(heightCell)
		if err != nil {
			return table, fmt.Errorf("row %d, %s: %w", rowNum, ColumnHeight, err)
		}
		settlement, err := parseNumber(settlementCell)
		if err != nil {
			return table, fmt.Errorf("row %d, %s: %w", rowNum, ColumnSettlement, err)
		}

		table.Rows = append(table.Rows, models.Measurement{
			Row:          rowNum,
			Date:         date,
			HeightM:      height,
			SettlementCM: settlement,
		})
	}

	if len(table.Rows) == 0 {
		return table, ErrNoRows
	}
	return table, nil
}

// findHeaderRow returns the index of the first row holding any value, or -1.
func findHeaderRow(rows [][]string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return rowIdx
			}
		}
	}
	return -1
}

// columnIndex maps each wanted header to its 0-based column index.
// The first occurrence of a duplicated header wins.
func columnIndex(header []string, wanted []string) (map[string]int, error) {
	found := make(map[string]int, len(wanted))
	for colIdx, cell := range header {
		name := strings.TrimSpace(cell)
		if _, dup := found[name]; dup {
			continue
		}
		found[name] = colIdx
	}

	result := make(map[string]int, len(wanted))
	var missing []string
	for _, name := range wanted {
		idx, ok := found[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		result[name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return result, nil
}
