package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultDateLayout matches dates like "5-Mar-23" and "15-Jan-24".
const DefaultDateLayout = "2-Jan-06"

// maxExcelSerial is the serial of 10000-01-01, one past the last Excel date.
const maxExcelSerial = 2958466

// ParseDate parses a date cell using layout.
// Cells holding a real Excel date arrive as serial numbers and are converted
// with the 1900 date system.
func ParseDate(s, layout string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty cell", ErrInvalidDate)
	}
	if t, err := time.Parse(layout, s); err == nil {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(serial) || serial <= 0 || serial >= maxExcelSerial {
			return time.Time{}, fmt.Errorf("%w: %q is outside the Excel date range", ErrInvalidDate, s)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidDate, s, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q does not match %q", ErrInvalidDate, s, layout)
}
