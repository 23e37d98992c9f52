package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trexfeathers/WOPI/internal/usecase"
)

const usageHint = "Please supply the path of a config file using -c, or use -h / -e / -d for help / example / demo"

// errReported marks errors the console reporter has already shown to the user.
var errReported = errors.New("already reported")

func reported(err error) error {
	return fmt.Errorf("%w: %w", errReported, err)
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

type rootOptions struct {
	config  string
	save    string
	example bool
	demo    bool
	debug   bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "radarskill",
		Short:         "Plot skill progression over time as a radar chart, input via a YAML config file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Input path of config YAML file")
	cmd.Flags().StringVarP(&opts.save, "save", "s", "",
		"Save path INCLUDING file extension (.png or .svg); if saving fails the chart is displayed instead")
	cmd.Flags().BoolVarP(&opts.example, "example", "e", false, "Print an example of the expected config file format")
	cmd.Flags().BoolVarP(&opts.demo, "demo", "d", false, "Plot the chart that results from the example config")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to the error log")

	cmd.AddCommand(validateCmd(), initCmd(), versionCmd())
	return cmd
}

// runRoot honours --example, then --demo, then --config.
func runRoot(cmd *cobra.Command, opts rootOptions) error {
	out := cmd.OutOrStdout()

	switch {
	case opts.example:
		fmt.Fprint(out, usecase.ExampleDocument)
		return nil
	case opts.demo:
		return plot(cmd, usecase.Source{Text: usecase.ExampleDocument}, opts)
	case strings.TrimSpace(opts.config) != "":
		return plot(cmd, usecase.Source{Path: opts.config}, opts)
	default:
		fmt.Fprintln(out, usageHint)
		return nil
	}
}

func plot(cmd *cobra.Command, src usecase.Source, opts rootOptions) error {
	s, err := openSession(cmd, opts.debug, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer s.Close()

	uc := usecase.NewPlotRadar(s.loader, s.renderer, s.reporter,
		usecase.WithChartDefaults(s.settings.Chart),
		usecase.WithValidator(s.validate),
	)

	out, err := uc.Execute(cmd.Context(), src, opts.save)
	s.log.Info("run.finished",
		"stage", string(out.Stage),
		"warnings", len(out.Warnings),
		"saved_to", out.SavedTo,
		"shown", out.Shown,
	)
	if err != nil {
		return reported(err)
	}
	return nil
}
