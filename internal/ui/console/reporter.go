package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/infra/logger"
	"github.com/trexfeathers/WOPI/internal/ports"
)

// Reporter prints outcomes to the console and appends warnings and errors to the log.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	theme  Theme
}

type Option func(*Reporter)

func WithTheme(t Theme) Option {
	return func(r *Reporter) { r.theme = t }
}

func NewReporter(out, errOut io.Writer, log *slog.Logger, opts ...Option) *Reporter {
	if log == nil {
		log = logger.Discard()
	}
	r := &Reporter{
		out:    out,
		errOut: errOut,
		log:    log,
		theme:  DefaultTheme(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.Reporter = (*Reporter)(nil)

func (r *Reporter) Success(msg string) {
	fmt.Fprintln(r.out, r.theme.Success.Render(msg))
	r.log.Debug("console.success", "msg", msg)
}

func (r *Reporter) Note(msg string) {
	fmt.Fprintln(r.out, r.theme.Note.Render(msg))
	r.log.Warn("config.fallback", "msg", msg)
}

func (r *Reporter) Warn(w domain.Warning) {
	fmt.Fprintln(r.out, r.theme.Warning.Render(w.Message))

	attrs := []any{"kind", string(w.Kind), "index", w.Index}
	if w.Date != "" {
		attrs = append(attrs, "date", w.Date)
	}
	if w.Skill != "" {
		attrs = append(attrs, "skill", w.Skill)
	}
	if w.Line > 0 {
		attrs = append(attrs, "line", w.Line)
	}
	r.log.Warn(w.Message, attrs...)
}

func (r *Reporter) Error(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(r.errOut, r.theme.Error.Render(UserMessage(err)))

	kind := domain.KindOf(err)
	level := slog.LevelWarn
	if kind == "" || kind.Fatal() {
		level = slog.LevelError
	}
	r.log.Log(context.Background(), level, "pipeline.error",
		"kind", string(kind),
		"fatal", kind == "" || kind.Fatal(),
		"err", err.Error(),
	)
}
