package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/simplespec-labs/simplespec/internal/branding"
	"github.com/simplespec-labs/simplespec/internal/config"
	"github.com/simplespec-labs/simplespec/internal/logging"
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/paths"
	"github.com/simplespec-labs/simplespec/internal/platform"
	"github.com/simplespec-labs/simplespec/internal/project"
	"github.com/simplespec-labs/simplespec/internal/runtime"
	"github.com/simplespec-labs/simplespec/internal/telemetry"
)

var (
	installRuntimes []string
	installMode     string
	installYes      bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install shared prompts and skills for selected runtimes",
	Long: `Stage the shared prompts and skills into ./.agents and expose them to each
selected runtime. Runtimes and the install mode are asked for interactively
when stdin is a terminal, unless --runtime or --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringSliceVarP(&installRuntimes, "runtime", "r", nil, "Runtime to install (repeatable, or comma-separated)")
	installCmd.Flags().StringVar(&installMode, "mode", "", "Install mode: symlink or copy (default from config)")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Use flags and config without prompting")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log := logging.GetLogger("install")
	defer logging.LogOperationStart(log, "install")()

	root, err := installationRoot()
	if err != nil {
		return fmt.Errorf("resolving installation root: %w", err)
	}

	reg := loadRegistry()

	ids, mode, err := selectInstall(cmd, reg)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := reg.Lookup(id); !ok {
			return &runtime.UnregisteredRuntimeError{ID: id}
		}
	}

	if rec, err := project.Load(root); err == nil && project.CheckVersion(rec.Version, buildVersion) {
		fmt.Fprintf(out, "%s This project was installed by %s v%s, newer than v%s.\n",
			warnMark(out), branding.CLIName(), rec.Version, buildVersion)
	}

	printIntro(out)
	if mode == mapping.ModeSymlink && !platform.IsSymlinkSupported() {
		fmt.Fprintf(out, "%s Symlinks are not available here; use --mode copy if linking fails.\n", warnMark(out))
	}

	session := runtime.NewSession(root, runtime.WithMode(mode), runtime.WithLogger(log))
	if err := reg.InstallAll(session, ids); err != nil {
		fmt.Fprintf(out, "%s Installation failed: %v\n", crossMark(out), err)
		return err
	}

	for _, id := range ids {
		info, _ := reg.Lookup(id)
		fmt.Fprintf(out, "  %s %s %s\n", checkMark(out), info.DisplayName, styled(out, dimStyle, info.InstallRootPath))
	}

	if _, err := project.RecordInstall(root, buildVersion, string(mode), ids, time.Now()); err != nil {
		log.Warn().Err(err).Msg("could not update install record")
	}

	telemetry.NewTracker(nil).TrackInstallSuccess(telemetry.InstallOptions{
		Version:     buildVersion,
		Disabled:    config.GetBool(config.KeyTelemetryDisabled),
		Key:         config.Get(config.KeyTelemetryKey),
		InstallMode: string(mode),
		Runtimes:    ids,
	})

	fmt.Fprintf(out, "\n%s Installed %d runtime(s) in %s mode.\n", checkMark(out), len(ids), mode)
	return nil
}

// selectInstall decides runtimes and mode from flags, config and, when stdin
// is a terminal, interactive prompts.
func selectInstall(cmd *cobra.Command, reg *runtime.Registry) ([]string, mapping.Mode, error) {
	defaultMode := installMode
	if defaultMode == "" {
		defaultMode = config.Get(config.KeyInstallMode)
	}
	mode, err := mapping.ParseMode(defaultMode)
	if err != nil {
		return nil, "", err
	}

	ids := installRuntimes
	interactive := !installYes && len(ids) == 0 && isTerminal(os.Stdin)
	if !interactive {
		if len(ids) == 0 {
			ids = config.GetStringSlice(config.KeyRuntimes)
		}
		if len(ids) == 0 {
			return nil, "", fmt.Errorf("no runtimes selected: pass --runtime or set %q with '%s config set'", config.KeyRuntimes, branding.CLIName())
		}
		return ids, mode, nil
	}

	return promptInstall(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), reg, mode, cmd.Flags().Changed("mode"))
}

func promptInstall(reader *bufio.Reader, w io.Writer, reg *runtime.Registry, mode mapping.Mode, modeFixed bool) ([]string, mapping.Mode, error) {
	ids, err := promptRuntimes(reader, w, reg.ListAvailable(), config.GetStringSlice(config.KeyRuntimes))
	if err != nil {
		return nil, "", err
	}
	if !modeFixed {
		if mode, err = promptMode(reader, w, mode); err != nil {
			return nil, "", err
		}
	}
	fmt.Fprintln(w)
	return ids, mode, nil
}

func printIntro(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", branding.DisplayName(), styled(w, dimStyle, "v"+buildVersion))
	fmt.Fprintln(w, branding.Description())
	fmt.Fprintf(w, "Installs %s by default and exposes it to the selected runtimes.\n\n",
		styled(w, inverseStyle, "./"+paths.SharedDir))
}
