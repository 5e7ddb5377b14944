package models

import "time"

// Series is a Table with elapsed days derived from the first row.
// All slices have the same length.
type Series struct {
	// Sheet is the worksheet name.
	Sheet string `json:"sheet"`
	// Dates are the survey dates.
	Dates []time.Time `json:"dates"`
	// Days is the number of days elapsed since Dates[0].
	Days []int `json:"days"`
	// HeightM are the structure heights in metres.
	HeightM []float64 `json:"height_m"`
	// SettlementCM are the settlement depths in centimetres.
	SettlementCM []float64 `json:"settlement_cm"`
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.Days)
}
