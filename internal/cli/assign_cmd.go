package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/domain"
	"staffplan/internal/fiscal"
)

func newAssignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Manage member assignments to WBS tasks",
	}

	cmd.AddCommand(
		newAssignSetCmd(app),
		newAssignListCmd(app),
		newAssignRemoveCmd(app),
	)

	return cmd
}

// findAssignment locates the ledger entry for one (project, task, member)
// triple.
func findAssignment(app *App, projectID, taskID, memberID string) *domain.AssignmentEntry {
	for _, e := range app.Workspace.Assignments.ListByMember(memberID) {
		if e.ProjectID == projectID && e.TaskID == taskID {
			return e
		}
	}
	return nil
}

func newAssignSetCmd(app *App) *cobra.Command {
	var project, task, member, month string
	var value float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set one month's allocation for a member on a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, project)
			if err != nil {
				return err
			}
			t, err := resolveProject(app, task)
			if err != nil {
				return err
			}
			m, err := resolveMember(app, member)
			if err != nil {
				return err
			}
			if _, _, err := fiscal.ParseMonthKey(month); err != nil {
				return fmt.Errorf("invalid month %q: %w", month, err)
			}
			if value < 0 || value > 1 {
				return fmt.Errorf("allocation %v out of range [0, 1]", value)
			}

			if existing := findAssignment(app, p.ID, t.ID, m.ID); existing != nil {
				app.Workspace.Assignments.UpdateMonthlyValue(existing.ID, month, value)
			} else {
				app.Workspace.Assignments.Upsert(p.ID, t.ID, m.ID, map[string]float64{month: value})
			}

			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s on %s to %s for %s\n",
				m.Name, t.Code, formatter.Fraction(value), month)

			if total := app.Workspace.Assignments.MemberMonthlyTotal(m.ID, month); total > 1.0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n",
					formatter.StyleRed.Render(fmt.Sprintf("Warning: %s is over-allocated in %s (total %s)",
						m.Name, month, formatter.Fraction(total))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Root project code or ID")
	cmd.Flags().StringVar(&task, "task", "", "WBS task code or ID")
	cmd.Flags().StringVar(&member, "member", "", "Member name or ID")
	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM)")
	cmd.Flags().Float64Var(&value, "value", 0, "Allocation fraction in [0, 1]; 0 clears the month")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newAssignListCmd(app *App) *cobra.Command {
	var member, project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assignments, optionally filtered by member or project",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Workspace.Assignments.List()
			if member != "" {
				m, err := resolveMember(app, member)
				if err != nil {
					return err
				}
				entries = app.Workspace.Assignments.ListByMember(m.ID)
			} else if project != "" {
				p, err := resolveProject(app, project)
				if err != nil {
					return err
				}
				entries = app.Workspace.Assignments.ListByProject(p.ID)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No assignments found.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				taskCode, memberName := e.TaskID, e.MemberID
				if t := app.Workspace.Projects.GetByID(e.TaskID); t != nil {
					taskCode = t.Code
				}
				if m := app.Workspace.Members.GetByID(e.MemberID); m != nil {
					memberName = m.Name
				}

				months := make([]string, 0, len(e.MonthlyValues))
				for k := range e.MonthlyValues {
					months = append(months, k)
				}
				sort.Strings(months)
				for _, mk := range months {
					rows = append(rows, []string{e.ID[:8], taskCode, memberName, mk,
						formatter.Fraction(e.MonthlyValues[mk])})
				}
			}
			sort.SliceStable(rows, func(i, j int) bool {
				if rows[i][3] != rows[j][3] {
					return rows[i][3] < rows[j][3]
				}
				return rows[i][2] < rows[j][2]
			})
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "TASK", "MEMBER", "MONTH", "ALLOC"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Filter by member name or ID")
	cmd.Flags().StringVar(&project, "project", "", "Filter by root project code or ID")

	return cmd
}

func newAssignRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an assignment entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if app.Workspace.Assignments.Get(id) == nil {
				// Accept ID prefixes the way project/member resolution does.
				var matches []*domain.AssignmentEntry
				for _, e := range app.Workspace.Assignments.List() {
					if len(id) > 0 && len(e.ID) >= len(id) && e.ID[:len(id)] == id {
						matches = append(matches, e)
					}
				}
				switch len(matches) {
				case 1:
					id = matches[0].ID
				case 0:
					return fmt.Errorf("assignment not found: %q", id)
				default:
					return fmt.Errorf("assignment %q is ambiguous (%d matches)", id, len(matches))
				}
			}

			app.Workspace.Assignments.Delete(id)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed assignment %s\n", id[:8])
			return nil
		},
	}
}
