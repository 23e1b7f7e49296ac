package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/lintgate/internal/app"
	"github.com/runoshun/lintgate/internal/usecase"
	"github.com/spf13/cobra"
)

// newHistoryCommand creates the history command for listing past runs.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded gate runs",
		Long: `List past gate runs from the project's history store
(.lintgate/history.json), newest first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListHistoryInput{Limit: limit})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Runs) == 0 {
				_, _ = fmt.Fprintln(w, "No recorded runs")
				return nil
			}

			for _, run := range out.Runs {
				verdict := "passed"
				if !run.Passed {
					verdict = "failed"
				}
				var tools []string
				for _, r := range run.Results {
					if r.Skipped {
						tools = append(tools, r.Tool+"(skipped)")
						continue
					}
					tools = append(tools, fmt.Sprintf("%s(%d)", r.Tool, r.ExitCode))
				}
				_, _ = fmt.Fprintf(w, "#%-4d %s  %-6s %s\n",
					run.ID,
					run.StartedAt.Format("2006-01-02 15:04:05"),
					verdict,
					strings.Join(tools, " "),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to show (0 for all)")
	return cmd
}
