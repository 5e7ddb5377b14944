package models

// Table represents the measurements loaded from one sheet, in sheet order.
type Table struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Rows contains the measurements in the order they appear in the sheet.
	Rows []Measurement `json:"rows"`
}
