package cli

import (
	"github.com/spf13/cobra"

	"github.com/simplespec-labs/simplespec/internal/branding"
	"github.com/simplespec-labs/simplespec/internal/config"
	"github.com/simplespec-labs/simplespec/internal/logging"
	"github.com/simplespec-labs/simplespec/internal/paths"
	"github.com/simplespec-labs/simplespec/internal/runtime"
	"github.com/simplespec-labs/simplespec/internal/runtimes"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbosity int
	rootFlag  string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs shared agent prompts and skills into a project and
exposes them to each selected agent runtime through symlinks or copies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetupLogger(verbosity)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Installation root (defaults to the invoking project directory)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// installationRoot returns --root when given, otherwise the resolved
// invocation directory.
func installationRoot() (string, error) {
	if rootFlag != "" {
		return rootFlag, nil
	}
	return paths.ResolveInstallationRoot()
}

// loadRegistry returns the process registry with the built-in runtimes loaded.
func loadRegistry() *runtime.Registry {
	reg := runtime.Default()
	runtimes.Load(reg)
	return reg
}
