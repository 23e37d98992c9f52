package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/infra/logger"
	"github.com/trexfeathers/WOPI/internal/infra/render"
	"github.com/trexfeathers/WOPI/internal/infra/settings"
	"github.com/trexfeathers/WOPI/internal/infra/yamlconfig"
	"github.com/trexfeathers/WOPI/internal/ui/console"
)

// openViewer overrides the system viewer used to display charts; nil keeps the default.
var openViewer func(string) error

type session struct {
	settings domain.Settings
	log      *slog.Logger
	validate *validator.Validate
	loader   *yamlconfig.Loader
	reporter *console.Reporter
	renderer *render.Renderer
	cleanup  func() error
}

// openSession wires one run. Console output goes to out; errors go to the command's stderr.
func openSession(cmd *cobra.Command, debug bool, out io.Writer) (*session, error) {
	st, err := settings.Load()
	if err != nil {
		return nil, err
	}

	log, cleanup, lerr := logger.Setup(logger.Config{
		Dir:   st.Log.Dir,
		File:  st.Log.File,
		Debug: debug,
	})
	if lerr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: error log unavailable: %v\n", lerr)
	}
	log = log.With("run_id", uuid.NewString())

	rep := console.NewReporter(out, cmd.ErrOrStderr(), log)

	return &session{
		settings: st,
		log:      log,
		validate: validator.New(),
		loader:   yamlconfig.NewLoader(),
		reporter: rep,
		renderer: render.New(
			render.WithDefaults(st.Chart),
			render.WithNotifier(rep.Note),
			render.WithOpener(openViewer),
		),
		cleanup: cleanup,
	}, nil
}

func (s *session) Close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}
