package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/simplespec-labs/simplespec/internal/branding"
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/paths"
	"github.com/simplespec-labs/simplespec/internal/project"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which runtimes are installed in this project",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(statusCmd)
}

// inspector is implemented by runtimes embedding runtime.Base.
type inspector interface {
	Inspect(s *runtime.Session, mappings ...mapping.DirectoryMapping) ([]mapping.EntryStatus, error)
}

type runtimeStatus struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	State   string                `json:"state"`
	Counts  map[mapping.State]int `json:"counts"`
	Entries []mapping.EntryStatus `json:"entries,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	root, err := installationRoot()
	if err != nil {
		return fmt.Errorf("resolving installation root: %w", err)
	}

	if _, err := os.Stat(paths.SharedRoot(root)); err != nil {
		fmt.Fprintf(out, "Shared assets are not installed in %s. Run '%s install'.\n", root, branding.CLIName())
		return nil
	}

	statuses, err := collectStatus(loadRegistry(), runtime.NewSession(root))
	if err != nil {
		return err
	}

	if statusJSON {
		data, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	if rec, err := project.Load(root); err == nil {
		fmt.Fprintf(out, "%s\n\n", styled(out, dimStyle, rec.String()))
	}
	return printStatusTable(out, statuses)
}

func collectStatus(reg *runtime.Registry, s *runtime.Session) ([]runtimeStatus, error) {
	var statuses []runtimeStatus
	for _, info := range reg.ListAvailable() {
		rt, err := reg.Get(info.ID)
		if err != nil {
			return nil, err
		}

		mapper, okM := rt.(runtime.Mapper)
		insp, okI := rt.(inspector)
		if !okM || !okI {
			continue
		}

		entries, err := insp.Inspect(s, mapper.Mappings()...)
		if err != nil {
			return nil, fmt.Errorf("inspecting %s: %w", info.ID, err)
		}

		counts := make(map[mapping.State]int)
		for _, e := range entries {
			counts[e.State]++
		}
		statuses = append(statuses, runtimeStatus{
			ID:      info.ID,
			Name:    info.DisplayName,
			State:   summarize(counts, len(entries)),
			Counts:  counts,
			Entries: entries,
		})
	}
	return statuses, nil
}

// summarize condenses entry counts into one word.
func summarize(counts map[mapping.State]int, total int) string {
	switch {
	case total == 0 || counts[mapping.StateMissing] == total:
		return "not installed"
	case counts[mapping.StateLinked] == total:
		return "linked"
	case counts[mapping.StateCopied] == total:
		return "copied"
	case counts[mapping.StateStale] > 0:
		return "stale"
	}
	return "partial"
}

func printStatusTable(w io.Writer, statuses []runtimeStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "RUNTIME\tSTATE\tLINKED\tCOPIED\tSTALE\tMISSING")
	for _, s := range statuses {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", s.Name, s.State,
			s.Counts[mapping.StateLinked], s.Counts[mapping.StateCopied],
			s.Counts[mapping.StateStale], s.Counts[mapping.StateMissing])
	}
	return tw.Flush()
}
