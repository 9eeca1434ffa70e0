package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simplespec-labs/simplespec/internal/project"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall [runtime...]",
	Short: "Remove runtime links from this project",
	Long: `Remove the symlinks install created for the given runtimes, or for every
runtime in the install record when none are named. Copied files, local files
and the shared .agents directory are left in place.`,
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := installationRoot()
	if err != nil {
		return fmt.Errorf("resolving installation root: %w", err)
	}

	ids := args
	if len(ids) == 0 {
		rec, err := project.Load(root)
		if err != nil {
			return fmt.Errorf("no runtimes given and no install record found: %w", err)
		}
		ids = rec.Runtimes
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, "No runtimes installed.")
		return nil
	}

	reg := loadRegistry()
	session := runtime.NewSession(root)

	for _, id := range ids {
		rt, err := reg.Get(id)
		if err != nil {
			return err
		}
		if err := rt.Uninstall(session); err != nil {
			fmt.Fprintf(out, "  %s %s (%v)\n", crossMark(out), rt.DisplayName(), err)
			return err
		}
		fmt.Fprintf(out, "  %s %s\n", checkMark(out), rt.DisplayName())
	}

	if err := project.RecordUninstall(root, ids); err != nil {
		return fmt.Errorf("updating install record: %w", err)
	}
	return nil
}
