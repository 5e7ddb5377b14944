package parser

import "github.com/xuri/excelize/v2"

// SheetNames returns the worksheet names in workbook tab order.
func SheetNames(f *excelize.File) []string {
	return f.GetSheetList()
}
