package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/domain"
)

func newOrgCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "org",
		Short: "Manage divisions and sections",
	}

	division := &cobra.Command{Use: "division", Short: "Manage divisions"}
	division.AddCommand(newDivisionAddCmd(app), newDivisionRemoveCmd(app))

	section := &cobra.Command{Use: "section", Short: "Manage sections"}
	section.AddCommand(newSectionAddCmd(app), newSectionRemoveCmd(app))

	cmd.AddCommand(division, section, newOrgListCmd(app))
	return cmd
}

func newDivisionAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a division",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := app.Workspace.Org.AddDivision(&domain.Division{Name: name})
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created division %s (%s)\n", d.Name, d.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Division name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newSectionAddCmd(app *App) *cobra.Command {
	var name, division string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a section under a division",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDivision(app, division)
			if err != nil {
				return err
			}
			s := app.Workspace.Org.AddSection(&domain.Section{DivisionID: d.ID, Name: name})
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created section %s under %s\n", s.Name, d.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Section name")
	cmd.Flags().StringVar(&division, "division", "", "Parent division name or ID")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("division")
	return cmd
}

func newDivisionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DIVISION",
		Short: "Remove a division, its sections, and detach their members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := resolveDivision(app, args[0])
			if err != nil {
				return err
			}
			app.Workspace.DeleteDivision(d.ID)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed division %s; members kept without a section\n", d.Name)
			return nil
		},
	}
}

func newSectionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove SECTION",
		Short: "Remove a section and detach its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSection(app, args[0])
			if err != nil {
				return err
			}
			app.Workspace.DeleteSection(s.ID)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed section %s; members kept without a section\n", s.Name)
			return nil
		},
	}
}

func newOrgListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the division and section hierarchy",
		RunE: func(cmd *cobra.Command, args []string) error {
			divisions := app.Workspace.Org.Divisions()
			if len(divisions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No divisions found.")
				return nil
			}

			memberCount := make(map[string]int)
			for _, m := range app.Workspace.Members.List() {
				if m.SectionID != nil {
					memberCount[*m.SectionID]++
				}
			}

			var items []formatter.TreeItem
			for _, d := range divisions {
				items = append(items, formatter.TreeItem{Title: formatter.Bold(d.Name)})
				sections := app.Workspace.Org.SectionsOfDivision(d.ID)
				for i, s := range sections {
					items = append(items, formatter.TreeItem{
						Title:  s.Name,
						Level:  1,
						IsLast: i == len(sections)-1,
						Detail: fmt.Sprintf("%d members", memberCount[s.ID]),
					})
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTree(items))
			return nil
		},
	}
}
