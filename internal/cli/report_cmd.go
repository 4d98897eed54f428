package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Revenue and allocation reports",
	}

	cmd.AddCommand(newReportRevenueCmd(app), newReportOverallocCmd(app))
	return cmd
}

func newReportRevenueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "revenue",
		Short: "Show budget and expected revenue per member, section and division",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			divisions := app.Reports.Revenue()
			if len(divisions) == 0 {
				fmt.Fprintln(out, "No divisions found.")
				return nil
			}

			fmt.Fprintf(out, "%s\n\n", formatter.Header(fmt.Sprintf("Revenue FY%d", app.Workspace.FiscalYear)))
			for _, dr := range divisions {
				fmt.Fprintf(out, "%s  %s\n", formatter.Bold(dr.Division.Name),
					formatter.Dim(fmt.Sprintf("budget %s / expected %s",
						formatter.Amount(dr.Budget), formatter.Amount(dr.Expected))))

				for _, sr := range dr.Sections {
					fmt.Fprintf(out, "  %s\n", sr.Section.Name)
					rows := make([][]string, 0, len(sr.Members))
					for _, row := range sr.Members {
						rows = append(rows, []string{
							row.Member.Name,
							formatter.Amount(row.Budget),
							formatter.Amount(row.Expected),
						})
					}
					rows = append(rows, []string{
						formatter.Bold("total"),
						formatter.Bold(formatter.Amount(sr.Budget)),
						formatter.Bold(formatter.Amount(sr.Expected)),
					})
					fmt.Fprint(out, indent(formatter.RenderTable(
						[]string{"MEMBER", "BUDGET", "EXPECTED"}, rows), "  "))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func newReportOverallocCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overalloc",
		Short: "List member-months allocated above full capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			over := app.Reports.OverAllocations()
			if len(over) == 0 {
				fmt.Fprintln(out, formatter.StyleGreen.Render("No over-allocations."))
				return nil
			}

			for _, oa := range over {
				fmt.Fprintf(out, "%s %s %s\n",
					formatter.StyleRed.Render("●"),
					formatter.Bold(oa.Member.Name),
					fmt.Sprintf("%s total %s", oa.MonthKey,
						formatter.StyleRed.Render(formatter.Fraction(oa.Total))))
				for _, slice := range oa.Breakdown {
					taskCode := slice.TaskID
					if t := app.Workspace.Projects.GetByID(slice.TaskID); t != nil {
						taskCode = t.Code
					}
					fmt.Fprintf(out, "    %s %s\n", taskCode, formatter.Fraction(slice.Value))
				}
			}
			return nil
		},
	}
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
