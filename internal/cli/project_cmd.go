package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/domain"
	"staffplan/internal/effort"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project hierarchy",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectTreeCmd(app),
		newProjectStatusCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var code, name, parent string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project or WBS task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if existing := app.Workspace.Projects.GetByCode(code); existing != nil {
				return fmt.Errorf("project code %q already exists", code)
			}

			p := &domain.Project{Code: code, Name: name, Status: domain.ProjectNotStarted}
			var parentProject *domain.Project
			if parent != "" {
				var err error
				parentProject, err = resolveProject(app, parent)
				if err != nil {
					return err
				}
				p.ParentID = &parentProject.ID
				p.Level = parentProject.Level + 1
			}
			if err := p.ValidateCode(); err != nil {
				return err
			}
			if err := p.ValidateHierarchy(parentProject); err != nil {
				return err
			}

			p = app.Workspace.Projects.Add(p)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created project %s [%s]\n", p.Name, p.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Project code (e.g. P001, P001-01)")
	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&parent, "parent", "", "Parent project code or ID")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects as a flat table",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Workspace.Projects.List()
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}

			forest := effort.BuildForest(projects)
			sort.SliceStable(projects, func(i, j int) bool { return projects[i].Code < projects[j].Code })
			rows := make([][]string, 0, len(projects))
			for _, p := range projects {
				kind := "task"
				if !forest.IsLeaf(p.ID) {
					kind = "group"
				}
				rows = append(rows, []string{p.Code, p.Name, fmt.Sprintf("%d", p.Level), kind, formatter.StatusBadge(p.Status)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"CODE", "NAME", "LEVEL", "KIND", "STATUS"}, rows))
			return nil
		},
	}
}

func newProjectTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the project hierarchy as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			forest := effort.BuildForest(app.Workspace.Projects.List())
			if forest.Size() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No projects found.")
				return nil
			}

			var items []formatter.TreeItem
			var walk func(id string, level int, isLast bool)
			walk = func(id string, level int, isLast bool) {
				p := forest.Project(id)
				items = append(items, formatter.TreeItem{
					Code:   p.Code,
					Title:  p.Name,
					Level:  level,
					IsLast: isLast,
					Done:   p.Status == domain.ProjectCompleted,
				})
				children := forest.ChildIDs(id)
				for i, childID := range children {
					walk(childID, level+1, i == len(children)-1)
				}
			}
			roots := forest.RootIDs()
			for i, rootID := range roots {
				walk(rootID, 0, i == len(roots)-1)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTree(items))
			return nil
		},
	}
}

func newProjectStatusCmd(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "status PROJECT",
		Short: "Change a project's status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			if !domain.ValidProjectStatuses[status] {
				return fmt.Errorf("invalid status %q (not_started|active|completed)", status)
			}

			updated := *p
			updated.Status = domain.ProjectStatus(status)
			app.Workspace.Projects.Update(&updated)

			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project %s is now %s\n", p.Code, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "New status (not_started|active|completed)")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project and its assignments and effort entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProject(app, args[0])
			if err != nil {
				return err
			}
			forest := effort.BuildForest(app.Workspace.Projects.List())
			if !forest.IsLeaf(p.ID) {
				return fmt.Errorf("project %s has children, remove them first", p.Code)
			}

			app.Workspace.DeleteProjectTask(p.ID)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s\n", p.Code)
			return nil
		},
	}
}
