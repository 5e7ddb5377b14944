package chart

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// axisStep is the multiple the y-axis bounds snap to, and the minimum margin
// kept around the data.
const axisStep = 5.0

// YRange returns the y-axis bounds covering both series: the lowest
// settlement and the highest height, each snapped outward to a multiple of 5
// and padded by a further 5.
// Both slices must be non-empty.
func YRange(heights, settlements []float64) (min, max float64) {
	lo := floats.Min(settlements)
	hi := floats.Max(heights)
	min = math.Floor(lo/axisStep)*axisStep - axisStep
	max = math.Ceil(hi/axisStep)*axisStep + axisStep
	return min, max
}

// XRange returns [days[0], days[last]+1]. The extra day keeps the last
// marker and its label off the plot edge.
// days must be non-empty.
func XRange(days []int) (min, max float64) {
	return float64(days[0]), float64(days[len(days)-1]) + 1
}
