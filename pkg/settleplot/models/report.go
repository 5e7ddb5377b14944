package models

// Report describes the outcome of a plotting run.
type Report struct {
	// Input is the workbook path that was read.
	Input string `json:"input"`
	// Output is the PDF path that was written.
	Output string `json:"output"`
	// Sheets lists the rendered sheets in page order.
	Sheets []string `json:"sheets"`
}

// Pages returns the number of pages written to the output document.
func (r Report) Pages() int {
	return len(r.Sheets)
}
