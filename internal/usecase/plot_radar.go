package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/ports"
	ucextract "github.com/trexfeathers/WOPI/internal/usecase/extract"
)

// Source selects the document of one run: a file path, or literal text when Path is empty.
type Source struct {
	Path string
	Text string
}

// Outcome describes how far a run got and what it produced.
type Outcome struct {
	Stage    domain.Stage
	Spec     domain.ChartSpec
	Warnings []domain.Warning
	SavedTo  string
	Shown    bool
}

type PlotRadar struct {
	loader   ports.ConfigLoader
	renderer ports.ChartRenderer
	reporter ports.Reporter
	defaults domain.ChartDefaults
	validate *validator.Validate
}

type PlotOption func(*PlotRadar)

func WithChartDefaults(d domain.ChartDefaults) PlotOption {
	return func(uc *PlotRadar) { uc.defaults = d }
}

func WithValidator(v *validator.Validate) PlotOption {
	return func(uc *PlotRadar) {
		if v != nil {
			uc.validate = v
		}
	}
}

func NewPlotRadar(cl ports.ConfigLoader, cr ports.ChartRenderer, rep ports.Reporter, opts ...PlotOption) *PlotRadar {
	uc := &PlotRadar{
		loader:   cl,
		renderer: cr,
		reporter: rep,
		defaults: domain.DefaultSettings().Chart,
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Prepare runs load, validate, extract and reshape. A fatal error is reported once
// and returned with Stage set to StageAborted.
func (uc *PlotRadar) Prepare(ctx context.Context, src Source) (Outcome, error) {
	out := Outcome{Stage: domain.StageStart}

	if err := ctx.Err(); err != nil {
		return uc.abort(out, err)
	}

	cfg, err := uc.load(src)
	if err != nil {
		return uc.abort(out, err)
	}
	out.Stage = domain.StageLoaded

	entries, err := ValidateDocument(cfg)
	if err != nil {
		return uc.abort(out, err)
	}
	out.Stage = domain.StageValidated

	res := ucextract.Apply(entries)
	for _, w := range res.Warnings {
		uc.reporter.Warn(w)
	}
	out.Warnings = res.Warnings
	out.Stage = domain.StageExtracted

	table, err := Reshape(res.Records)
	if err != nil {
		return uc.abort(out, err)
	}
	out.Stage = domain.StageReshaped

	title, size, notes := ChartOptions(cfg, uc.defaults.Size, uc.validate)
	for _, n := range notes {
		uc.reporter.Note(n)
	}

	out.Spec = domain.ChartSpec{
		Title:  title,
		Size:   size,
		Table:  table,
		Colors: res.Colors,
	}
	return out, nil
}

// Execute prepares the chart and hands it to the renderer. With a save path the
// chart is written to disk; if that fails, or no path is given, it is displayed.
func (uc *PlotRadar) Execute(ctx context.Context, src Source, savePath string) (Outcome, error) {
	out, err := uc.Prepare(ctx, src)
	if err != nil {
		return out, err
	}

	if p := strings.TrimSpace(savePath); p != "" {
		if err := uc.renderer.Save(ctx, out.Spec, p); err != nil {
			uc.reporter.Error(&domain.OpError{
				Op:   "usecase.plot_radar.save",
				Kind: domain.KindSave,
				Path: p,
				Err:  err,
			})
		} else {
			uc.reporter.Success("Figure saved to:  " + p)
			out.SavedTo = p
			out.Stage = domain.StageRendered
			return out, nil
		}
	}

	uc.reporter.Success("Displaying plot")
	if err := uc.renderer.Display(ctx, out.Spec); err != nil {
		rerr := &domain.OpError{Op: "usecase.plot_radar.display", Kind: domain.KindRender, Err: err}
		uc.reporter.Error(rerr)
		return out, rerr
	}
	out.Shown = true
	out.Stage = domain.StageRendered
	return out, nil
}

func (uc *PlotRadar) load(src Source) (domain.RawConfig, error) {
	if src.Path != "" {
		return uc.loader.LoadFile(src.Path)
	}
	return uc.loader.LoadText(src.Text)
}

func (uc *PlotRadar) abort(out Outcome, err error) (Outcome, error) {
	out.Stage = domain.StageAborted
	uc.reporter.Error(err)
	return out, err
}
