package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"staffplan/internal/cli/formatter"
	"staffplan/internal/document"
	"staffplan/internal/storage"
)

func newSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save and restore tagged workspace snapshots",
	}

	cmd.AddCommand(
		newSnapshotSaveCmd(app),
		newSnapshotListCmd(app),
		newSnapshotRestoreCmd(app),
		newSnapshotDeleteCmd(app),
		newSnapshotClearCmd(app),
	)

	return cmd
}

// resolveSnapshot maps user input to a snapshot by tag, exact ID, or unique
// ID prefix.
func resolveSnapshot(app *App, input string) (*storage.SnapshotMeta, error) {
	metas := app.Snapshots.MetaList()
	for _, meta := range metas {
		if meta.Tag == input {
			return meta, nil
		}
	}
	var matches []*storage.SnapshotMeta
	for _, meta := range metas {
		if meta.ID == input {
			return meta, nil
		}
		if len(input) > 0 && len(meta.ID) >= len(input) && meta.ID[:len(input)] == input {
			matches = append(matches, meta)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("snapshot not found: %q", input)
	default:
		return nil, fmt.Errorf("snapshot %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newSnapshotSaveCmd(app *App) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the current workspace under a tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := app.Snapshots.Save(tag, app.Workspace.ToDocument(), document.SchemaVersion)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot %s (%s, %d bytes)\n",
				meta.Tag, meta.ID[:8], meta.DataSize)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Snapshot tag (letters, digits, '.', '_', '-')")
	_ = cmd.MarkFlagRequired("tag")

	return cmd
}

func newSnapshotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			metas := app.Snapshots.MetaList()
			if len(metas) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No snapshots found.")
				return nil
			}
			rows := make([][]string, 0, len(metas))
			for _, meta := range metas {
				rows = append(rows, []string{
					meta.ID[:8],
					meta.Tag,
					fmt.Sprintf("FY%d", meta.FiscalYear),
					meta.CreatedAt.Local().Format("2006-01-02 15:04"),
					fmt.Sprintf("%d B", meta.DataSize),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"ID", "TAG", "YEAR", "CREATED", "SIZE"}, rows))
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.Dim(fmt.Sprintf("%d of %d slots used", len(metas), storage.MaxSnapshots)))
			return nil
		},
	}
}

func newSnapshotRestoreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "restore SNAPSHOT",
		Short: "Replace the workspace with a snapshot's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := resolveSnapshot(app, args[0])
			if err != nil {
				return err
			}
			entry := app.Snapshots.Get(meta.ID)
			if entry == nil || entry.Document == nil {
				return fmt.Errorf("snapshot %s has no readable payload", meta.Tag)
			}

			app.Workspace.Replace(entry.Document)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restored snapshot %s (FY%d)\n", meta.Tag, meta.FiscalYear)
			return nil
		},
	}
}

func newSnapshotDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete SNAPSHOT",
		Short: "Delete one snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := resolveSnapshot(app, args[0])
			if err != nil {
				return err
			}
			ok, err := app.Snapshots.Delete(meta.ID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("snapshot not found: %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %s\n", meta.Tag)
			return nil
		},
	}
}

func newSnapshotClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete all snapshots without --force")
			}
			if err := app.Snapshots.ClearAll(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared all snapshots")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deleting every snapshot")
	return cmd
}
