package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Annotation is a text placed at a data coordinate.
type Annotation struct {
	X, Y float64
	Text string
}

// labelSet draws annotations sharing one text style, optionally on a filled
// box. It implements plot.Plotter.
type labelSet struct {
	items []Annotation
	style draw.TextStyle
	// box fills the area behind each label when non-nil.
	box color.Color
	pad vg.Length
}

// Plot implements the plot.Plotter interface.
func (l *labelSet) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, a := range l.items {
		pt := vg.Point{X: trX(a.X), Y: trY(a.Y)}
		if l.box != nil {
			c.FillPolygon(l.box, l.boxAround(pt, a.Text))
		}
		c.FillText(l.style, pt, a.Text)
	}
}

// boxAround returns the corners of the padded text rectangle anchored at pt,
// rotated with the text.
func (l *labelSet) boxAround(pt vg.Point, txt string) []vg.Point {
	w := l.style.Width(txt)
	h := l.style.Height(txt)

	x0 := vg.Length(l.style.XAlign)*w - l.pad
	x1 := x0 + w + 2*l.pad
	y0 := vg.Length(l.style.YAlign)*h - l.pad
	y1 := y0 + h + 2*l.pad

	sin, cos := math.Sincos(l.style.Rotation)
	s, co := vg.Length(sin), vg.Length(cos)
	corners := [4][2]vg.Length{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}

	pts := make([]vg.Point, len(corners))
	for i, k := range corners {
		pts[i] = vg.Point{
			X: pt.X + k[0]*co - k[1]*s,
			Y: pt.Y + k[0]*s + k[1]*co,
		}
	}
	return pts
}
