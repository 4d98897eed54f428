package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage phase schedules per project",
	}

	phase := &cobra.Command{Use: "phase", Short: "Manage the phase catalog"}
	phase.AddCommand(newSchedulePhaseAddCmd(app))

	cmd.AddCommand(
		phase,
		newScheduleSetCmd(app),
		newScheduleListCmd(app),
		newScheduleRemoveCmd(app),
	)

	return cmd
}

func resolvePhase(app *App, input string) (*domain.PhaseDefinition, error) {
	if input == "" {
		return nil, fmt.Errorf("phase name or ID is required")
	}
	for _, p := range app.Workspace.Schedule.Phases() {
		if strings.EqualFold(p.Name, input) || p.ID == input {
			return p, nil
		}
	}
	return nil, fmt.Errorf("phase not found: %q", input)
}

func newSchedulePhaseAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a phase to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range app.Workspace.Schedule.Phases() {
				if strings.EqualFold(p.Name, name) {
					return fmt.Errorf("phase %q already exists", name)
				}
			}

			p := app.Workspace.Schedule.AddPhase(&domain.PhaseDefinition{Name: name, Enabled: true})
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added phase %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Phase name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newScheduleSetCmd(app *App) *cobra.Command {
	var project, phase, start, end string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a project's date range for one phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, project)
			if err != nil {
				return err
			}
			ph, err := resolvePhase(app, phase)
			if err != nil {
				return err
			}
			if err := validateDate(start); err != nil {
				return err
			}
			if err := validateDate(end); err != nil {
				return err
			}
			if end < start {
				return fmt.Errorf("end date %s precedes start date %s", end, start)
			}

			app.Workspace.Schedule.UpsertEntry(p.ID, ph.ID, start, end)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s %s from %s to %s\n", p.Code, ph.Name, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Project code or ID")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase name or ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("phase")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newScheduleListCmd(app *App) *cobra.Command {
	var project string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule entries and the spanned month range",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.Workspace.Schedule.Entries()
			if project != "" {
				p, err := resolveProject(app, project)
				if err != nil {
					return err
				}
				entries = app.Workspace.Schedule.EntriesByProject(p.ID)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No schedule entries found.")
				return nil
			}

			phaseName := make(map[string]string)
			for _, ph := range app.Workspace.Schedule.Phases() {
				phaseName[ph.ID] = ph.Name
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				code := e.ProjectID
				if p := app.Workspace.Projects.GetByID(e.ProjectID); p != nil {
					code = p.Code
				}
				name := phaseName[e.PhaseID]
				if name == "" {
					name = e.PhaseID
				}
				rows = append(rows, []string{e.ID[:8], code, name, e.StartDate, e.EndDate})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "PROJECT", "PHASE", "START", "END"}, rows))

			if months := app.Workspace.Schedule.MonthRange(); len(months) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.Dim(fmt.Sprintf("spanning %s .. %s (%d months)",
						months[0], months[len(months)-1], len(months))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Filter by project code or ID")
	return cmd
}

func newScheduleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a schedule entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var matches []*domain.ScheduleEntry
			for _, e := range app.Workspace.Schedule.Entries() {
				if e.ID == id {
					matches = []*domain.ScheduleEntry{e}
					break
				}
				if len(e.ID) >= len(id) && e.ID[:len(id)] == id {
					matches = append(matches, e)
				}
			}
			switch len(matches) {
			case 1:
				id = matches[0].ID
			case 0:
				return fmt.Errorf("schedule entry not found: %q", id)
			default:
				return fmt.Errorf("schedule entry %q is ambiguous (%d matches)", id, len(matches))
			}

			app.Workspace.Schedule.DeleteEntry(id)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed schedule entry %s\n", id[:8])
			return nil
		},
	}
}
