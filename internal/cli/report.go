package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyorg/internal/report"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		asHTML bool
		raw    bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a summary of every list and the grade average",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := a.newController()
			md := report.Markdown(ctrl.Greeting(), ctrl.Service())

			var (
				out string
				err error
			)
			switch {
			case raw:
				out = md
			case asHTML:
				if out, err = report.HTML(md); err != nil {
					return err
				}
			default:
				if out, err = report.Terminal(md, width, a.cfg.Theme); err != nil {
					return err
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "Emit an HTML fragment instead of terminal output")
	cmd.Flags().BoolVar(&raw, "markdown", false, "Emit the markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "Word wrap width for terminal output")
	cmd.MarkFlagsMutuallyExclusive("html", "markdown")
	return cmd
}
