package mapping

import (
	"os"
	"path/filepath"

	"github.com/simplespec-labs/simplespec/internal/platform"
)

// Unlink removes the symlinks that mappings created under runtimeRoot and
// returns the removed paths. Only links that resolve into the mapped source
// directory are removed, including fallback copies whose .target sidecar
// points there; copied files and unrelated entries stay. Target
// directories left empty are removed, and so is runtimeRoot when it ends up
// empty.
func Unlink(sharedRoot, runtimeRoot string, mappings []DirectoryMapping) ([]string, error) {
	var removed []string

	for _, m := range mappings {
		sourceDir, targetDir := m.dirs(sharedRoot, runtimeRoot)

		if platform.IsSymlink(targetDir) {
			if resolvesTo(targetDir, sourceDir) {
				if err := platform.RemoveSymlink(targetDir); err != nil {
					return removed, err
				}
				removed = append(removed, targetDir)
			}
			continue
		}

		entries, err := os.ReadDir(targetDir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return removed, err
		}

		for _, entry := range entries {
			if platform.IsSidecar(entry.Name()) {
				continue
			}
			path := filepath.Join(targetDir, entry.Name())
			if !platform.IsSymlink(path) && !platform.IsFallbackCopy(path) {
				continue
			}
			if !pointsInto(path, sourceDir, filepath.Join(sourceDir, entry.Name())) {
				continue
			}
			if err := platform.RemoveSymlink(path); err != nil {
				return removed, err
			}
			removed = append(removed, path)
		}

		if err := removeIfEmpty(targetDir); err != nil {
			return removed, err
		}
	}

	if err := removeIfEmpty(runtimeRoot); err != nil {
		return removed, err
	}
	return removed, nil
}

// resolvesTo reports whether the link at path resolves exactly to want.
func resolvesTo(path, want string) bool {
	resolved, err := platform.ResolveSymlink(path)
	return err == nil && resolved == filepath.Clean(want)
}

// pointsInto reports whether the link at path resolves to want, or at least
// into dir when the exact entry is gone from the source.
func pointsInto(path, dir, want string) bool {
	resolved, err := platform.ResolveSymlink(path)
	if err != nil {
		return false
	}
	return resolved == filepath.Clean(want) || filepath.Dir(resolved) == filepath.Clean(dir)
}

func removeIfEmpty(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if len(entries) > 0 {
		return nil
	}
	return os.Remove(dir)
}
