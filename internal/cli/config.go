package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplespec-labs/simplespec/internal/branding"
	"github.com/simplespec-labs/simplespec/internal/config"
	"github.com/simplespec-labs/simplespec/internal/mapping"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys: install_mode, runtimes, telemetry_disabled, telemetry_key.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if key == config.KeyRuntimes {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.GetStringSlice(key), ","))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
		return nil
	},
}

func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyInstallMode:
		_, err := mapping.ParseMode(value)
		return err
	case config.KeyRuntimes:
		reg := loadRegistry()
		for _, id := range strings.Split(value, ",") {
			id = strings.TrimSpace(id)
			if _, ok := reg.Lookup(id); id != "" && !ok {
				return fmt.Errorf("unknown runtime %q (see '%s list')", id, branding.CLIName())
			}
		}
	case config.KeyTelemetryDisabled:
		if value != "true" && value != "false" {
			return fmt.Errorf("%s must be true or false", key)
		}
	case config.KeyTelemetryKey:
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}
