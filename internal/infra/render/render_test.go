package render

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trexfeathers/WOPI/internal/domain"
)

func sampleSpec() domain.ChartSpec {
	return domain.ChartSpec{
		Title: "Skills",
		Size:  domain.ChartSize{Width: 4, Height: 4},
		Table: domain.SkillTable{
			Skills:   []string{"Skill 1", "Skill 2", "Skill 5"},
			Dates:    []string{"2019-04-08", "2019-04-12"},
			Values:   [][]float64{{2, 3}, {5, 5.3}, {0, 4}},
			Filled:   true,
			MinValue: 2,
			MaxValue: 5.3,
		},
		Colors: domain.ColorMap{"2019-04-08": "blue", "2019-04-12": domain.DefaultColor},
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("blue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, c)

	c, err = ParseColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, c)

	c, err = ParseColor("#0f0")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, c)

	for _, bad := range []string{"", domain.DefaultColor, "notacolour", "#12", "#zzzzzz"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveColors(t *testing.T) {
	spec := sampleSpec()
	colors, notes := ResolveColors(spec.Table, spec.Colors, []string{"red", "green"})

	require.Len(t, colors, 2)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, colors[0])
	assert.Equal(t, color.RGBA{G: 0x80, A: 0xff}, colors[1]) // palette[1] = css green
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "2019-04-12")
}

func TestNewLayout(t *testing.T) {
	spec := sampleSpec()
	colors, _ := ResolveColors(spec.Table, spec.Colors, nil)
	l := NewLayout(spec, 400, 400, colors)

	assert.Len(t, l.Spokes, 3)
	assert.Len(t, l.Series, 2)

	// axis runs from AxisMin=1 to AxisMax=6
	require.NotEmpty(t, l.Rings)
	assert.Equal(t, 1, l.Rings[0].Value)
	assert.Equal(t, 6, l.Rings[len(l.Rings)-1].Value)

	// first spoke points along +x
	assert.InDelta(t, l.Center.Y, l.Spokes[0].End.Y, 1e-9)
	assert.Greater(t, l.Spokes[0].End.X, l.Center.X)

	// the zero fill sits inside the lowest ring
	fill := l.Series[0].Points[2]
	d := math.Hypot(fill.X-l.Center.X, fill.Y-l.Center.Y)
	assert.Less(t, d, l.Rings[0].Radius)

	for _, s := range l.Series {
		for _, p := range s.Points {
			assert.LessOrEqual(t, math.Hypot(p.X-l.Center.X, p.Y-l.Center.Y), l.Radius+1e-9)
		}
	}
}

func TestNewLayout_CapsRings(t *testing.T) {
	spec := sampleSpec()
	spec.Table.MaxValue = 1000
	l := NewLayout(spec, 400, 400, make([]color.RGBA, 2))
	assert.LessOrEqual(t, len(l.Rings), 11)
}

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("chart.PNG")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	f, err = FormatFor("out/chart.svg")
	require.NoError(t, err)
	assert.Equal(t, FormatSVG, f)

	_, err = FormatFor("chart.jpg")
	assert.Error(t, err)
	_, err = FormatFor("chart")
	assert.Error(t, err)
}

func TestSave_SVGAndPNG(t *testing.T) {
	dir := t.TempDir()
	var notes []string
	r := New(WithNotifier(func(s string) { notes = append(notes, s) }))

	svgPath := filepath.Join(dir, "chart.svg")
	require.NoError(t, r.Save(context.Background(), sampleSpec(), svgPath))
	b, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "<svg"))
	assert.Contains(t, string(b), "Skill 5")
	assert.Contains(t, string(b), "2019-04-12")

	pngPath := filepath.Join(dir, "chart.png")
	require.NoError(t, r.Save(context.Background(), sampleSpec(), pngPath))
	pb, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(pb))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	assert.NotEmpty(t, notes)
}

func TestSave_Failures(t *testing.T) {
	r := New()
	dir := t.TempDir()

	err := r.Save(context.Background(), sampleSpec(), filepath.Join(dir, "chart.bmp"))
	assert.True(t, errors.Is(err, domain.ErrSave))
	_, statErr := os.Stat(filepath.Join(dir, "chart.bmp"))
	assert.True(t, os.IsNotExist(statErr))

	err = r.Save(context.Background(), sampleSpec(), filepath.Join(dir, "missing", "chart.png"))
	assert.True(t, errors.Is(err, domain.ErrSave))

	err = r.Save(context.Background(), domain.ChartSpec{}, filepath.Join(dir, "chart.png"))
	assert.True(t, errors.Is(err, domain.ErrSave))
}

func TestDisplay_OpensTempSVG(t *testing.T) {
	dir := t.TempDir()
	var opened string
	r := New(WithTempDir(dir), WithOpener(func(p string) error { opened = p; return nil }))

	require.NoError(t, r.Display(context.Background(), sampleSpec()))
	assert.Equal(t, dir, filepath.Dir(opened))
	assert.Equal(t, ".svg", filepath.Ext(opened))
	_, err := os.Stat(opened)
	assert.NoError(t, err)
}

func TestDisplay_OpenerFailure(t *testing.T) {
	r := New(WithTempDir(t.TempDir()), WithOpener(func(string) error { return errors.New("no viewer") }))

	err := r.Display(context.Background(), sampleSpec())
	assert.True(t, errors.Is(err, domain.ErrRender))
}

func TestNewLayout_ClampsHugeAxis(t *testing.T) {
	spec := sampleSpec()
	spec.Table.MinValue = -1e30
	spec.Table.MaxValue = 9.2e18

	l := NewLayout(spec, 400, 400, make([]color.RGBA, 2))

	require.NotEmpty(t, l.Rings)
	assert.LessOrEqual(t, len(l.Rings), 11)
	assert.Equal(t, -int(domain.MaxSkillMagnitude), l.Rings[0].Value)
	for i := 1; i < len(l.Rings); i++ {
		assert.Greater(t, l.Rings[i].Value, l.Rings[i-1].Value)
	}
}
