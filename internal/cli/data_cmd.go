package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the workspace as pretty-printed JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Documents.Export(app.Workspace.ToDocument())
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", len(data), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the workspace with a previously exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import file: %w", err)
			}
			doc, err := app.Documents.Import(data)
			if err != nil {
				return err
			}

			app.Workspace.Replace(doc)
			if err := app.Workspace.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported FY%d workspace (%d projects, %d members)\n",
				doc.FiscalYear, len(doc.Projects), len(doc.Members))
			return nil
		},
	}
}
