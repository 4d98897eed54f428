// Package cli wires the cobra command surface over the workspace stores.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"staffplan/internal/report"
	"staffplan/internal/storage"
	"staffplan/internal/store"
)

// App holds the shared state CLI commands operate on.
type App struct {
	Workspace  *store.Workspace
	Documents  *storage.DocumentStore
	Snapshots  *storage.SnapshotStore
	Reports    *report.Service
	StartMonth int
}

// NewRootCmd creates the top-level "staffplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "staffplan",
		Short:         "Resource planning: assignments, effort rollups and revenue",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Accept underscores in flag names as dashes.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newMemberCmd(app),
		newOrgCmd(app),
		newProjectCmd(app),
		newAssignCmd(app),
		newEffortCmd(app),
		newScheduleCmd(app),
		newReportCmd(app),
		newSnapshotCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
