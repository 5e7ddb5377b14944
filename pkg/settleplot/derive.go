package settleplot

import (
	"math"
	"time"

	"github.com/ukaji3/settleplot-go/pkg/settleplot/models"
)

const day = 24 * time.Hour

// ElapsedDays returns, for each date, the whole days elapsed since dates[0].
// Order is not checked: an earlier date later in the slice yields a negative
// count.
func ElapsedDays(dates []time.Time) []int {
	days := make([]int, len(dates))
	if len(dates) == 0 {
		return days
	}
	epoch := dates[0]
	for i, d := range dates {
		days[i] = int(math.Floor(float64(d.Sub(epoch)) / float64(day)))
	}
	return days
}

// Derive builds the plotted series of a table.
func Derive(t models.Table) models.Series {
	n := len(t.Rows)
	s := models.Series{
		Sheet:        t.Sheet,
		Dates:        make([]time.Time, n),
		HeightM:      make([]float64, n),
		SettlementCM: make([]float64, n),
	}
	for i, m := range t.Rows {
		s.Dates[i] = m.Date
		s.HeightM[i] = m.HeightM
		s.SettlementCM[i] = m.SettlementCM
	}
	s.Days = ElapsedDays(s.Dates)
	return s
}
