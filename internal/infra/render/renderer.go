package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/ports"
)

// Format is an output image format, chosen by file extension.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// FormatFor maps a save path to a Format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	case "":
		return "", fmt.Errorf("save path %q has no file extension (supported: .png, .svg)", path)
	default:
		return "", fmt.Errorf("unsupported file extension %q (supported: .png, .svg)", filepath.Ext(path))
	}
}

type Renderer struct {
	defaults domain.ChartDefaults
	notify   func(string)
	open     func(string) error
	tempDir  string
}

type Option func(*Renderer)

func WithDefaults(d domain.ChartDefaults) Option {
	return func(r *Renderer) { r.defaults = d }
}

// WithNotifier receives colour fallback notes.
func WithNotifier(fn func(string)) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.notify = fn
		}
	}
}

// WithOpener replaces the system viewer used by Display.
func WithOpener(fn func(string) error) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.open = fn
		}
	}
}

func WithTempDir(dir string) Option {
	return func(r *Renderer) { r.tempDir = dir }
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		defaults: domain.DefaultSettings().Chart,
		notify:   func(string) {},
		open:     browser.OpenFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// Save writes the chart to path in the format given by its extension.
func (r *Renderer) Save(ctx context.Context, spec domain.ChartSpec, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if spec.Table.Empty() {
		return saveErr(path, errors.New("empty table"))
	}

	format, err := FormatFor(path)
	if err != nil {
		return saveErr(path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return saveErr(path, err)
	}

	werr := r.write(f, format, spec)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(path)
		return saveErr(path, errors.Join(werr, cerr))
	}
	return nil
}

// Display writes the chart to a temporary SVG file and opens it in the system viewer.
func (r *Renderer) Display(ctx context.Context, spec domain.ChartSpec) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if spec.Table.Empty() {
		return renderErr(errors.New("empty table"))
	}

	f, err := os.CreateTemp(r.tempDir, "radarskill-*.svg")
	if err != nil {
		return renderErr(err)
	}
	path := f.Name()

	werr := r.write(f, FormatSVG, spec)
	cerr := f.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(path)
		return renderErr(errors.Join(werr, cerr))
	}

	if err := r.open(path); err != nil {
		return renderErr(fmt.Errorf("open %s: %w", path, err))
	}
	return nil
}

func (r *Renderer) write(w io.Writer, format Format, spec domain.ChartSpec) error {
	l := r.Layout(spec)
	switch format {
	case FormatPNG:
		return WritePNG(w, l)
	default:
		return WriteSVG(w, l)
	}
}

// Layout resolves colours and pixel geometry for spec.
func (r *Renderer) Layout(spec domain.ChartSpec) Layout {
	size := spec.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = r.defaults.Size
	}
	dpi := r.defaults.DPI
	if dpi <= 0 {
		dpi = domain.DefaultSettings().Chart.DPI
	}

	colors, notes := ResolveColors(spec.Table, spec.Colors, r.defaults.Palette)
	for _, n := range notes {
		r.notify(n)
	}

	w := int(size.Width * float64(dpi))
	h := int(size.Height * float64(dpi))
	return NewLayout(spec, w, h, colors)
}

func saveErr(path string, err error) error {
	return &domain.OpError{Op: "render.save", Kind: domain.KindSave, Path: path, Err: err}
}

func renderErr(err error) error {
	return &domain.OpError{Op: "render.display", Kind: domain.KindRender, Err: err}
}
