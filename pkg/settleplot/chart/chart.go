package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/ukaji3/settleplot-go/pkg/settleplot/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	heightName     = "Height (m)"
	settlementName = "Settlement (cm)"
	dateAxisLabel  = "Measurement Date"
	dayAxisLabel   = "Cumulative Days"
)

// keyOffsetDays is the distance of the colour keys from the first day.
const keyOffsetDays = 2

// labelBox is the semi-opaque background behind value labels.
var labelBox = color.NRGBA{R: 255, G: 255, B: 255, A: 178}

// Chart is one page: a plot with a title band and a secondary day axis.
type Chart struct {
	// Title is drawn above the day axis.
	Title string

	plot       *plot.Plot
	days       *dayAxis
	titleStyle draw.TextStyle
	margin     vg.Length

	heightLabels     *labelSet
	settlementLabels *labelSet
	keys             []*labelSet
}

// Build creates the chart for a series. The series must hold at least one
// point.
func Build(s models.Series, style Style) (*Chart, error) {
	n := s.Len()
	if n == 0 {
		return nil, fmt.Errorf("sheet %q: empty series", s.Sheet)
	}

	p := plot.New()
	p.X.Label.Text = dateAxisLabel
	p.Legend.Top = true

	heightXYs := make(plotter.XYs, n)
	settlementXYs := make(plotter.XYs, n)
	dateTicks := make([]plot.Tick, n)
	dayTicks := make([]plot.Tick, n)
	for i, d := range s.Days {
		x := float64(d)
		heightXYs[i] = plotter.XY{X: x, Y: s.HeightM[i]}
		settlementXYs[i] = plotter.XY{X: x, Y: s.SettlementCM[i]}
		dateTicks[i] = plot.Tick{Value: x, Label: s.Dates[i].Format(DateLabelLayout)}
		dayTicks[i] = plot.Tick{Value: x, Label: strconv.Itoa(d)}
	}

	heightLine, heightPoints, err := newSeries(heightXYs, style.HeightColor)
	if err != nil {
		return nil, fmt.Errorf("height series: %w", err)
	}
	settlementLine, settlementPoints, err := newSeries(settlementXYs, style.SettlementColor)
	if err != nil {
		return nil, fmt.Errorf("settlement series: %w", err)
	}

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.Color = color.Black
	zero.Width = vg.Points(1)

	heightLabels := valueLabels(heightXYs, style.HeightColor, style.LabelOffset, draw.XLeft)
	settlementLabels := valueLabels(settlementXYs, style.SettlementColor, -style.LabelOffset, draw.XRight)

	x0 := float64(s.Days[0]) + keyOffsetDays
	keys := []*labelSet{
		colorKey(Annotation{X: x0, Y: floats.Max(s.HeightM) * 0.5, Text: heightName}, style.HeightColor),
		colorKey(Annotation{X: x0, Y: floats.Min(s.SettlementCM) * 0.5, Text: settlementName}, style.SettlementColor),
	}

	p.Add(plotter.NewGrid())
	p.Add(zero)
	p.Add(heightLine, heightPoints, settlementLine, settlementPoints)
	p.Add(heightLabels, settlementLabels)
	p.Add(keys[0], keys[1])

	p.Legend.Add(heightName, heightLine, heightPoints)
	p.Legend.Add(settlementName, settlementLine, settlementPoints)

	// Add widens the ranges to the data; the fixed bounds are applied last.
	p.X.Min, p.X.Max = XRange(s.Days)
	p.Y.Min, p.Y.Max = YRange(s.HeightM, s.SettlementCM)

	p.X.Tick.Marker = plot.ConstantTicks(dateTicks)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	titleStyle := textStyle(color.Black, vg.Points(14))
	titleStyle.XAlign = draw.XCenter
	titleStyle.YAlign = draw.YTop

	return &Chart{
		Title:            fmt.Sprintf("Height and Settlement vs. Time (%s)", s.Sheet),
		plot:             p,
		days:             newDayAxis(p, dayAxisLabel, dayTicks),
		titleStyle:       titleStyle,
		margin:           vg.Points(12),
		heightLabels:     heightLabels,
		settlementLabels: settlementLabels,
		keys:             keys,
	}, nil
}

// Plot returns the underlying plot.
func (c *Chart) Plot() *plot.Plot {
	return c.plot
}

// Annotations returns the value labels of the height and settlement series.
func (c *Chart) Annotations() (height, settlement []Annotation) {
	return c.heightLabels.items, c.settlementLabels.items
}

// Keys returns the positions of the height and settlement colour keys.
func (c *Chart) Keys() (height, settlement Annotation) {
	return c.keys[0].items[0], c.keys[1].items[0]
}

// Draw renders the chart onto dc: title band on top, then the day axis, then
// the plot itself.
func (c *Chart) Draw(dc draw.Canvas) {
	dc = draw.Crop(dc, c.margin, -c.margin, c.margin, -c.margin)

	titleHeight := c.titleStyle.Height(c.Title) + c.margin/2
	plotArea := draw.Crop(dc, 0, 0, 0, -(titleHeight + c.days.size()))
	c.plot.Draw(plotArea)

	data := c.plot.DataCanvas(plotArea)
	c.days.draw(data, c.plot)

	dc.FillText(c.titleStyle, vg.Point{X: (data.Min.X + data.Max.X) / 2, Y: dc.Max.Y}, c.Title)
}

func newSeries(xys plotter.XYs, clr color.Color) (*plotter.Line, *plotter.Scatter, error) {
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, err
	}
	line.Color = clr
	line.Width = vg.Points(1.5)
	points.GlyphStyle.Color = clr
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)
	return line, points, nil
}

// valueLabels annotates every point but the first with its value, offset
// vertically by offset data units. align selects whether the rotated text
// grows away from the point upwards (XLeft) or downwards (XRight).
func valueLabels(xys plotter.XYs, clr color.Color, offset float64, align draw.XAlignment) *labelSet {
	sty := textStyle(clr, vg.Points(9))
	sty.Rotation = math.Pi / 2
	sty.XAlign = align
	sty.YAlign = draw.YCenter

	items := make([]Annotation, 0, len(xys))
	for i, xy := range xys {
		// The first point is not labelled.
		if i == 0 {
			continue
		}
		items = append(items, Annotation{
			X:    xy.X,
			Y:    xy.Y + offset,
			Text: fmt.Sprintf("%.2f", xy.Y),
		})
	}
	return &labelSet{items: items, style: sty, box: labelBox, pad: vg.Points(1.5)}
}

// colorKey is a vertical series name drawn inside the plot in the series
// colour, to the right of its anchor.
func colorKey(a Annotation, clr color.Color) *labelSet {
	sty := textStyle(clr, vg.Points(12))
	sty.Rotation = math.Pi / 2
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	return &labelSet{items: []Annotation{a}, style: sty}
}
