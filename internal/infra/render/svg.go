package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG draws the layout as an SVG document.
func WriteSVG(w io.Writer, l Layout) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(l.Width, l.Height)
	canvas.Rect(0, 0, l.Width, l.Height, "fill:white")

	if l.Title != "" {
		canvas.Text(l.Width/2, 24, l.Title, "font-family:sans-serif;font-size:14px;text-anchor:middle")
	}

	cx, cy := px(l.Center.X), px(l.Center.Y)
	for _, r := range l.Rings {
		canvas.Circle(cx, cy, px(r.Radius), "fill:none;stroke:#dddddd;stroke-width:1")
		canvas.Text(cx+px(r.Radius)+2, cy-2, fmt.Sprint(r.Value), "font-family:sans-serif;font-size:7px;fill:grey")
	}
	for _, s := range l.Spokes {
		canvas.Line(cx, cy, px(s.End.X), px(s.End.Y), "stroke:#dddddd;stroke-width:1")
		canvas.Text(px(s.LabelAt.X), px(s.LabelAt.Y), s.Name,
			"font-family:sans-serif;font-size:8px;fill:grey;text-anchor:"+anchorFor(s.LabelAt.X, l.Center.X))
	}

	for _, s := range l.Series {
		xs, ys := coords(s.Points)
		hex := hexOf(s.Color)
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:0.3;stroke:%s;stroke-width:1", hex, hex))
	}

	for i, s := range l.Series {
		p := l.LegendSlot(i)
		canvas.Rect(px(p.X), px(p.Y), 10, 10, "fill:"+hexOf(s.Color))
		canvas.Text(px(p.X)+14, px(p.Y)+9, s.Label, "font-family:sans-serif;font-size:8px")
	}

	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func coords(pts []Point) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	return xs, ys
}

func px(v float64) int {
	return int(math.Round(v))
}

func anchorFor(x, center float64) string {
	switch {
	case x < center-1:
		return "end"
	case x > center+1:
		return "start"
	default:
		return "middle"
	}
}
