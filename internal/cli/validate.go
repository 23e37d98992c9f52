package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trexfeathers/WOPI/internal/usecase"
)

func validateCmd() *cobra.Command {
	var config string
	var demo bool
	var format string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Check a config file and print the reshaped skill table (no chart)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatPretty && format != formatJSON {
				return fmt.Errorf("unknown format %q (use pretty|json)", format)
			}

			var src usecase.Source
			switch {
			case demo:
				src.Text = usecase.ExampleDocument
			case strings.TrimSpace(config) != "":
				src.Path = config
			default:
				return errors.New("config is required (use --config or -c, or --demo)")
			}

			debug, _ := cmd.Flags().GetBool("debug")

			// Keep stdout clean for machine-readable output.
			out := cmd.OutOrStdout()
			if format == formatJSON {
				out = cmd.ErrOrStderr()
			}

			s, err := openSession(cmd, debug, out)
			if err != nil {
				return err
			}
			defer s.Close()

			uc := usecase.NewPlotRadar(s.loader, s.renderer, s.reporter,
				usecase.WithChartDefaults(s.settings.Chart),
				usecase.WithValidator(s.validate),
			)
			res, err := uc.Prepare(cmd.Context(), src)
			if err != nil {
				return reported(err)
			}
			return printOutcome(cmd.OutOrStdout(), res, format)
		},
	}

	c.Flags().StringVarP(&config, "config", "c", "", "Input path of config YAML file")
	c.Flags().BoolVarP(&demo, "demo", "d", false, "Validate the example config instead")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
