package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// dayAxis is a secondary x-axis drawn above the data area. It shares the
// horizontal transform of the plot it decorates.
type dayAxis struct {
	label      string
	ticks      []plot.Tick
	labelStyle draw.TextStyle
	tickStyle  draw.TextStyle
	lineStyle  draw.LineStyle
	tickLength vg.Length
	pad        vg.Length
}

func newDayAxis(p *plot.Plot, label string, ticks []plot.Tick) *dayAxis {
	tickStyle := p.X.Tick.Label
	tickStyle.Rotation = math.Pi / 2
	tickStyle.XAlign = draw.XLeft
	tickStyle.YAlign = draw.YCenter

	labelStyle := p.X.Label.TextStyle
	labelStyle.XAlign = draw.XCenter
	labelStyle.YAlign = draw.YBottom

	return &dayAxis{
		label:      label,
		ticks:      ticks,
		labelStyle: labelStyle,
		tickStyle:  tickStyle,
		lineStyle:  p.X.LineStyle,
		tickLength: p.X.Tick.Length,
		pad:        vg.Points(3),
	}
}

// longestTick is the vertical extent of the rotated tick labels.
func (a *dayAxis) longestTick() vg.Length {
	var longest vg.Length
	for _, t := range a.ticks {
		if w := a.tickStyle.Width(t.Label); w > longest {
			longest = w
		}
	}
	return longest
}

// size is the height the axis needs above the data area.
func (a *dayAxis) size() vg.Length {
	return a.tickLength + a.pad + a.longestTick() + a.pad + a.labelStyle.Height(a.label) + a.pad
}

// draw renders the axis along the top edge of the data canvas.
func (a *dayAxis) draw(data draw.Canvas, p *plot.Plot) {
	trX, _ := p.Transforms(&data)
	y := data.Max.Y

	data.StrokeLine2(a.lineStyle, data.Min.X, y, data.Max.X, y)
	for _, t := range a.ticks {
		if t.Value < p.X.Min || t.Value > p.X.Max {
			continue
		}
		x := trX(t.Value)
		data.StrokeLine2(a.lineStyle, x, y, x, y+a.tickLength)
		data.FillText(a.tickStyle, vg.Point{X: x, Y: y + a.tickLength + a.pad}, t.Label)
	}

	labelY := y + a.tickLength + a.pad + a.longestTick() + a.pad
	data.FillText(a.labelStyle, vg.Point{X: (data.Min.X + data.Max.X) / 2, Y: labelY}, a.label)
}
