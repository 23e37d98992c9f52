package render

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
)

// WritePNG rasterizes the layout and encodes it as PNG.
func WritePNG(w io.Writer, l Layout) error {
	dc := gg.NewContext(l.Width, l.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if l.Title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(l.Title, float64(l.Width)/2, 18, 0.5, 0.5)
	}

	dc.SetLineWidth(1)
	for _, r := range l.Rings {
		dc.SetRGB(0.87, 0.87, 0.87)
		dc.DrawCircle(l.Center.X, l.Center.Y, r.Radius)
		dc.Stroke()
		dc.SetRGB(0.5, 0.5, 0.5)
		dc.DrawString(fmt.Sprint(r.Value), l.Center.X+r.Radius+2, l.Center.Y-2)
	}
	for _, s := range l.Spokes {
		dc.SetRGB(0.87, 0.87, 0.87)
		dc.DrawLine(l.Center.X, l.Center.Y, s.End.X, s.End.Y)
		dc.Stroke()
		dc.SetRGB(0.5, 0.5, 0.5)
		dc.DrawStringAnchored(s.Name, s.LabelAt.X, s.LabelAt.Y, anchorX(s.LabelAt.X, l.Center.X), 0.5)
	}

	for _, s := range l.Series {
		if len(s.Points) == 0 {
			continue
		}
		r, g, b := float64(s.Color.R)/255, float64(s.Color.G)/255, float64(s.Color.B)/255
		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.SetRGBA(r, g, b, 0.3)
		dc.FillPreserve()
		dc.SetRGB(r, g, b)
		dc.Stroke()
	}

	for i, s := range l.Series {
		p := l.LegendSlot(i)
		dc.SetColor(s.Color)
		dc.DrawRectangle(p.X, p.Y, 10, 10)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(s.Label, p.X+14, p.Y+5, 0, 0.5)
	}

	return dc.EncodePNG(w)
}

func anchorX(x, center float64) float64 {
	switch {
	case x < center-1:
		return 1
	case x > center+1:
		return 0
	default:
		return 0.5
	}
}
