package render

import (
	"image/color"
	"math"

	"github.com/trexfeathers/WOPI/internal/domain"
)

// Point is a position in pixels, origin top-left.
type Point struct {
	X, Y float64
}

// Series is one closed polygon of the chart (one date).
type Series struct {
	Label  string
	Color  color.RGBA
	Points []Point
}

// Spoke is one skill axis.
type Spoke struct {
	Name    string
	End     Point
	LabelAt Point
}

// Ring is one radial tick.
type Ring struct {
	Value  int
	Radius float64
}

// Layout is the resolved geometry of a radar chart.
type Layout struct {
	Width, Height int
	Center        Point
	Radius        float64
	Title         string
	Spokes        []Spoke
	Rings         []Ring
	Series        []Series
	LegendTop     float64
}

const (
	legendColumns = 3
	legendRow     = 16.0
	titleBand     = 28.0
	maxRings      = 10
)

// NewLayout maps a chart spec onto a canvas of the given pixel size.
// colors holds one resolved colour per date, in table column order.
func NewLayout(spec domain.ChartSpec, width, height int, colors []color.RGBA) Layout {
	t := spec.Table
	l := Layout{Width: width, Height: height, Title: spec.Title}

	top := 8.0
	if spec.Title != "" {
		top += titleBand
	}
	rows := math.Ceil(float64(len(t.Dates)) / legendColumns)
	bottom := rows*legendRow + 16
	l.LegendTop = float64(height) - bottom + 8

	plotH := float64(height) - top - bottom
	l.Radius = math.Max(10, math.Min(float64(width), plotH)/2*0.78)
	l.Center = Point{X: float64(width) / 2, Y: top + plotH/2}

	lo := float64(t.AxisMin() - 1)
	hi := float64(t.AxisMax() + 1)
	scale := func(v float64) float64 {
		if hi <= lo {
			return 0
		}
		r := (v - lo) / (hi - lo) * l.Radius
		return math.Max(0, math.Min(l.Radius, r))
	}

	n := len(t.Skills)
	angle := func(i int) float64 { return 2 * math.Pi * float64(i) / float64(n) }

	for i, s := range t.Skills {
		a := angle(i)
		l.Spokes = append(l.Spokes, Spoke{
			Name:    s,
			End:     l.polar(a, l.Radius),
			LabelAt: l.polar(a, l.Radius+14),
		})
	}

	step := 1
	if span := t.AxisMax() - t.AxisMin(); span > maxRings {
		step = int(math.Ceil(float64(span) / maxRings))
	}
	for v := t.AxisMin(); v <= t.AxisMax(); v += step {
		l.Rings = append(l.Rings, Ring{Value: v, Radius: scale(float64(v))})
	}

	for c, d := range t.Dates {
		col := t.Column(d)
		pts := make([]Point, 0, n)
		for i, v := range col {
			pts = append(pts, l.polar(angle(i), scale(v)))
		}
		l.Series = append(l.Series, Series{Label: d, Color: colors[c], Points: pts})
	}

	return l
}

// polar places a point counter-clockwise from the positive x axis.
func (l Layout) polar(a, r float64) Point {
	return Point{X: l.Center.X + r*math.Cos(a), Y: l.Center.Y - r*math.Sin(a)}
}

// LegendSlot returns the swatch position of the i-th legend entry.
func (l Layout) LegendSlot(i int) Point {
	colW := float64(l.Width) / legendColumns
	return Point{
		X: float64(i%legendColumns)*colW + 12,
		Y: l.LegendTop + float64(i/legendColumns)*legendRow,
	}
}
