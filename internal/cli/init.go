package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trexfeathers/WOPI/internal/infra/scaffold"
	"github.com/trexfeathers/WOPI/internal/ui/console"
	"github.com/trexfeathers/WOPI/internal/usecase"
)

func initCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write an example skills config and settings file to start from",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			written, err := usecase.NewInitProject(scaffold.NewInitializer()).Execute(dir, force)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), console.UserMessage(err))
				return reported(err)
			}

			out := cmd.OutOrStdout()
			if len(written) == 0 {
				fmt.Fprintln(out, "Nothing written; files already exist (use --force to overwrite)")
				return nil
			}
			for _, p := range written {
				fmt.Fprintln(out, "wrote", p)
			}
			fmt.Fprintf(out, "Plot it with: radarskill -c %s\n", filepath.Join(dir, scaffold.ConfigFile))
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}
