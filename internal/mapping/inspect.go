package mapping

import (
	"os"
	"path/filepath"

	"github.com/simplespec-labs/simplespec/internal/platform"
)

// State describes what was found at an expected mapping path.
type State string

const (
	StateLinked  State = "linked"
	StateStale   State = "stale"
	StateCopied  State = "copied"
	StateMissing State = "missing"
)

// EntryStatus is the inspection result for one expected path.
type EntryStatus struct {
	Path   string `json:"path"`
	Source string `json:"source"`
	State  State  `json:"state"`
}

// Inspect reports, for every path the mappings would produce, whether a
// valid relative link, a stale or absolute link, a real file or nothing is
// present. It fails when a mapped source directory cannot be read.
func Inspect(sharedRoot, runtimeRoot string, mappings []DirectoryMapping) ([]EntryStatus, error) {
	var out []EntryStatus

	for _, m := range mappings {
		sourceDir, targetDir := m.dirs(sharedRoot, runtimeRoot)

		if m.Granularity() == LinkDirectory {
			out = append(out, EntryStatus{Path: targetDir, Source: sourceDir, State: stateOf(targetDir, sourceDir)})
			continue
		}

		entries, err := os.ReadDir(sourceDir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			src := filepath.Join(sourceDir, entry.Name())
			dst := filepath.Join(targetDir, entry.Name())
			out = append(out, EntryStatus{Path: dst, Source: src, State: stateOf(dst, src)})
		}
	}
	return out, nil
}

func stateOf(path, source string) State {
	if _, err := os.Lstat(path); err != nil {
		return StateMissing
	}
	if !platform.IsSymlink(path) {
		return StateCopied
	}

	raw, err := platform.ReadSymlinkTarget(path)
	if err != nil || filepath.IsAbs(raw) {
		return StateStale
	}
	resolved, err := platform.ResolveSymlink(path)
	if err != nil || resolved != filepath.Clean(source) {
		return StateStale
	}
	if _, err := os.Stat(path); err != nil {
		return StateStale
	}
	return StateLinked
}
