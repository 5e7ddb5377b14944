// Package chart renders settlement series as gonum/plot charts and collects
// them into a multi-page PDF document.
package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DateLabelLayout formats the primary x-axis tick labels.
const DateLabelLayout = "02-Jan-06"

// Style configures page size, colours and label placement.
type Style struct {
	// Width is the page width.
	Width vg.Length
	// Height is the page height.
	Height vg.Length
	// HeightColor is used for the height series, its labels and key.
	HeightColor color.Color
	// SettlementColor is used for the settlement series, its labels and key.
	SettlementColor color.Color
	// LabelOffset is the vertical distance, in data units, between a point
	// and its value label.
	LabelOffset float64
}

// DefaultStyle returns a 14x7 inch page with blue height and red settlement.
func DefaultStyle() Style {
	return Style{
		Width:           14 * vg.Inch,
		Height:          7 * vg.Inch,
		HeightColor:     color.RGBA{B: 255, A: 255},
		SettlementColor: color.RGBA{R: 255, A: 255},
		LabelOffset:     1,
	}
}

// textStyle returns an unrotated text style in the default plot font.
func textStyle(clr color.Color, size vg.Length) draw.TextStyle {
	return draw.TextStyle{
		Color:   clr,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
	}
}
