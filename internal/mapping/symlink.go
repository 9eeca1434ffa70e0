package mapping

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simplespec-labs/simplespec/internal/logging"
	"github.com/simplespec-labs/simplespec/internal/platform"
)

// LinkMappings creates relative symlinks from runtimeRoot back into
// sharedRoot for every mapping.
//
// Entry mode replaces same-named entries in the target directory and leaves
// other entries alone. Directory mode replaces whatever sits at the target
// path with a single link.
func LinkMappings(sharedRoot, runtimeRoot string, mappings []DirectoryMapping) error {
	log := logging.GetLogger("mapping")

	for _, m := range mappings {
		sourceDir, targetDir := m.dirs(sharedRoot, runtimeRoot)

		if m.Granularity() == LinkDirectory {
			if err := linkDirectory(sourceDir, targetDir); err != nil {
				return err
			}
			log.Debug().Str("source", sourceDir).Str("target", targetDir).Msg("linked directory")
			continue
		}

		n, err := linkEntries(sourceDir, targetDir)
		if err != nil {
			return err
		}
		log.Debug().Str("source", sourceDir).Str("target", targetDir).Int("entries", n).Msg("linked entries")
	}
	return nil
}

func linkDirectory(sourceDir, targetDir string) error {
	if err := os.MkdirAll(filepath.Dir(targetDir), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(targetDir); err != nil {
		return err
	}

	rel, err := relativeTarget(targetDir, sourceDir)
	if err != nil {
		return err
	}
	return platform.CreateSymlink(rel, targetDir, platform.KindDir)
}

func linkEntries(sourceDir, targetDir string) (int, error) {
	if err := ensureRealDir(targetDir); err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		sourcePath := filepath.Join(sourceDir, entry.Name())
		targetPath := filepath.Join(targetDir, entry.Name())

		if err := os.RemoveAll(targetPath); err != nil {
			return 0, err
		}

		rel, err := relativeTarget(targetPath, sourcePath)
		if err != nil {
			return 0, err
		}

		kind := platform.KindFile
		if info, err := os.Stat(sourcePath); err == nil && info.IsDir() {
			kind = platform.KindDir
		}
		if err := platform.CreateSymlink(rel, targetPath, kind); err != nil {
			return 0, fmt.Errorf("linking %s: %w", targetPath, err)
		}
	}
	return len(entries), nil
}

// relativeTarget returns the path of source relative to the directory that
// will contain link.
func relativeTarget(link, source string) (string, error) {
	rel, err := filepath.Rel(filepath.Dir(link), source)
	if err != nil {
		return "", &UnsafeSymlinkPathError{Link: link, Source: source, Err: err}
	}
	if filepath.IsAbs(rel) {
		return "", &UnsafeSymlinkPathError{Link: link, Source: source, Result: rel}
	}
	return rel, nil
}

// ensureRealDir makes dir an actual directory. A symlink left at that path by
// an earlier install is removed first so nothing is written through it into
// the shared assets.
func ensureRealDir(dir string) error {
	if platform.IsSymlink(dir) {
		if err := os.Remove(dir); err != nil {
			return err
		}
	}
	return os.MkdirAll(dir, 0755)
}
