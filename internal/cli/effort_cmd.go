package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/domain"
	"staffplan/internal/effort"
)

func newEffortCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effort",
		Short: "Manage effort columns, entries, and rollups",
	}

	column := &cobra.Command{Use: "column", Short: "Manage effort columns"}
	column.AddCommand(newEffortColumnAddCmd(app), newEffortColumnListCmd(app))

	cmd.AddCommand(column, newEffortSetCmd(app), newEffortReportCmd(app))
	return cmd
}

// enabledColumns returns the workspace's enabled effort columns in sort
// order.
func enabledColumns(app *App) []*domain.EffortColumn {
	var cols []*domain.EffortColumn
	for _, c := range app.Workspace.EffortColumns {
		if c.Enabled {
			cols = append(cols, c)
		}
	}
	sort.SliceStable(cols, func(i, j int) bool { return cols[i].SortOrder < cols[j].SortOrder })
	return cols
}

func resolveColumn(app *App, input string) (*domain.EffortColumn, error) {
	for _, c := range app.Workspace.EffortColumns {
		if strings.EqualFold(c.Name, input) || c.ID == input {
			return c, nil
		}
	}
	return nil, fmt.Errorf("effort column not found: %q", input)
}

func newEffortColumnAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an effort column",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(app.Workspace.EffortColumns) >= domain.MaxEffortColumns {
				return fmt.Errorf("at most %d effort columns are allowed", domain.MaxEffortColumns)
			}
			for _, c := range app.Workspace.EffortColumns {
				if strings.EqualFold(c.Name, name) {
					return fmt.Errorf("effort column %q already exists", name)
				}
			}

			col := &domain.EffortColumn{
				ID:        newID(),
				Name:      name,
				SortOrder: len(app.Workspace.EffortColumns) + 1,
				Enabled:   true,
			}
			app.Workspace.EffortColumns = append(app.Workspace.EffortColumns, col)

			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added effort column %s\n", col.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Column name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newEffortColumnListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effort columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := app.Workspace.EffortColumns
			if len(cols) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No effort columns defined.")
				return nil
			}
			rows := make([][]string, 0, len(cols))
			for _, c := range cols {
				enabled := "yes"
				if !c.Enabled {
					enabled = formatter.Dim("no")
				}
				rows = append(rows, []string{fmt.Sprintf("%d", c.SortOrder), c.Name, enabled})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"#", "NAME", "ENABLED"}, rows))
			return nil
		},
	}
}

func newEffortSetCmd(app *App) *cobra.Command {
	var task, column string
	var value float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record a task's own effort for one column",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resolveProject(app, task)
			if err != nil {
				return err
			}
			col, err := resolveColumn(app, column)
			if err != nil {
				return err
			}
			if value < 0 {
				return fmt.Errorf("effort must not be negative")
			}

			app.Workspace.Efforts.Set(t.ID, col.ID, value)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s effort on %s to %s\n",
				col.Name, t.Code, formatter.Effort(value))

			forest := effort.BuildForest(app.Workspace.Projects.List())
			if !forest.IsLeaf(t.ID) {
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.Dim("Note: this task has children; the rollup shows their sum instead."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task code or ID")
	cmd.Flags().StringVar(&column, "column", "", "Effort column name or ID")
	cmd.Flags().Float64Var(&value, "value", 0, "Effort value")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newEffortReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the project tree with rolled-up effort per column",
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := enabledColumns(app)
			if len(cols) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No enabled effort columns; add one with 'effort column add'.")
				return nil
			}
			forest := effort.BuildForest(app.Workspace.Projects.List())
			if forest.Size() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}

			columnIDs := make([]string, len(cols))
			headers := []string{"CODE", "NAME"}
			for i, c := range cols {
				columnIDs[i] = c.ID
				headers = append(headers, strings.ToUpper(c.Name))
			}
			values := effort.Rollup(forest, columnIDs, app.Workspace.Efforts.List())

			var rows [][]string
			var walk func(id string, depth int)
			walk = func(id string, depth int) {
				p := forest.Project(id)
				name := strings.Repeat("  ", depth) + p.Name
				if !forest.IsLeaf(id) {
					name = strings.Repeat("  ", depth) + formatter.Bold(p.Name)
				}
				row := []string{p.Code, name}
				for _, columnID := range columnIDs {
					row = append(row, formatter.Effort(values[effort.Key(id, columnID)]))
				}
				rows = append(rows, row)
				for _, childID := range forest.ChildIDs(id) {
					walk(childID, depth+1)
				}
			}
			for _, rootID := range forest.RootIDs() {
				walk(rootID, 0)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
