package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/simplespec-labs/simplespec/internal/runtime"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available runtimes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	infos := loadRegistry().ListAvailable()
	if listJSON {
		return printListJSON(cmd, infos)
	}
	return printListTable(cmd, infos)
}

func printListTable(cmd *cobra.Command, infos []runtime.Info) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDIRECTORY")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.ID, info.DisplayName, info.InstallRootPath)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, infos []runtime.Info) error {
	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
