package mapping

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/simplespec-labs/simplespec/internal/logging"
	"github.com/simplespec-labs/simplespec/internal/platform"
)

// SkipFunc reports whether the entry at rel (relative to the tree root) should
// be left out of a copy. Returning true for a directory skips its subtree.
type SkipFunc func(rel string, isDir bool) bool

// CopyMappings duplicates each mapped source tree into runtimeRoot. Files are
// overwritten; entries that exist only at the target are never touched.
func CopyMappings(sharedRoot, runtimeRoot string, mappings []DirectoryMapping) error {
	log := logging.GetLogger("mapping")
	src := afero.NewOsFs()

	for _, m := range mappings {
		sourceDir, targetDir := m.dirs(sharedRoot, runtimeRoot)
		if err := CopyTree(src, sourceDir, targetDir, nil); err != nil {
			return err
		}
		log.Debug().Str("source", sourceDir).Str("target", targetDir).Msg("copied tree")
	}
	return nil
}

// CopyTree recursively copies srcDir from src into dstDir on the local
// filesystem. Existing files are overwritten and nothing is deleted.
// Symlinks and other special files in the source are skipped.
func CopyTree(src afero.Fs, srcDir, dstDir string, skip SkipFunc) error {
	if _, err := src.Stat(srcDir); err != nil {
		return err
	}
	if err := ensureRealDir(dstDir); err != nil {
		return err
	}

	return afero.Walk(src, srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if skip != nil && skip(rel, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		dst := filepath.Join(dstDir, rel)

		switch {
		case info.IsDir():
			return ensureRealDir(dst)
		case info.Mode().IsRegular():
			return copyFile(src, path, dst, info.Mode())
		}
		return nil
	})
}

// copyFile copies a single file, replacing a symlink at dst rather than
// writing through it. Owner read and write bits are always set so read-only
// sources such as embedded files can be refreshed later.
func copyFile(src afero.Fs, srcPath, dst string, mode os.FileMode) error {
	data, err := afero.ReadFile(src, srcPath)
	if err != nil {
		return err
	}

	if err := ensureRealDir(filepath.Dir(dst)); err != nil {
		return err
	}
	if platform.IsSymlink(dst) {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}

	perm := mode.Perm() | 0600
	if err := os.WriteFile(dst, data, perm); err != nil {
		return err
	}
	return platform.Chmod(dst, perm)
}
