// Package models defines data structures for settlement plotting.
package models

import "time"

// Measurement represents a single survey row of a monitoring sheet.
type Measurement struct {
	// Row is the worksheet row number (1-based) the measurement was read from.
	Row int `json:"row"`
	// Date is the survey date.
	Date time.Time `json:"date"`
	// HeightM is the structure height in metres.
	HeightM float64 `json:"height_m"`
	// SettlementCM is the settlement depth in centimetres.
	SettlementCM float64 `json:"settlement_cm"`
}
