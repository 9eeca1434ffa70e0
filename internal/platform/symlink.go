package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Kind tells whether a link points at a file or a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

// String returns "file" or "dir".
func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// sidecarSuffix marks the file recording the original target of a copy fallback.
const sidecarSuffix = ".target"

// CreateSymlink creates a symbolic link at link pointing to target.
// On Unix systems, this uses os.Symlink directly; kind is informational.
// On Windows, it attempts os.Symlink first (requires developer mode), then
// falls back to copying file targets and writing a .target sidecar.
// Directory targets have no fallback.
func CreateSymlink(target, link string, kind Kind) error {
	err := os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}

	if kind == KindDir {
		return fmt.Errorf("creating directory symlink %s: %w", link, err)
	}

	if err := copyFileForSymlink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// Non-fatal: the copy succeeded, only the target bookkeeping is lost.
	_ = os.WriteFile(link+sidecarSuffix, []byte(target), 0644)

	return nil
}

// RemoveSymlink removes a symlink (or its fallback copy and sidecar).
func RemoveSymlink(path string) error {
	err := os.Remove(path)
	os.Remove(path + sidecarSuffix) // best-effort
	return err
}

// ReadSymlinkTarget returns the raw target of a symlink.
// If os.Readlink fails because a copy fallback was used, it reads from the
// .target sidecar file.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	data, readErr := os.ReadFile(path + sidecarSuffix)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// ResolveSymlink returns the cleaned absolute path a link points at. Relative
// targets are resolved against the directory containing the link.
func ResolveSymlink(path string) (string, error) {
	target, err := ReadSymlinkTarget(path)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}

// IsSymlink reports whether path exists and is a symbolic link.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// IsFallbackCopy reports whether path is a regular file standing in for a
// symlink, recorded by a .target sidecar.
func IsFallbackCopy(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	_, err = os.Stat(path + sidecarSuffix)
	return err == nil
}

// IsSidecar reports whether name is a .target sidecar file name.
func IsSidecar(name string) bool {
	return strings.HasSuffix(name, sidecarSuffix)
}

// IsSymlinkSupported returns true if the current platform supports native symlinks.
// On Windows this attempts a test symlink to check developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir := os.TempDir()
	link := filepath.Join(tmpDir, ".simplespec-symlink-test")
	defer os.Remove(link)

	return os.Symlink(tmpDir, link) == nil
}

// copyFileForSymlink copies src to dst. A relative src is resolved against
// the directory containing dst, the same way the OS resolves link targets.
func copyFileForSymlink(src, dst string) error {
	resolvedSrc := src
	if !filepath.IsAbs(src) {
		resolvedSrc = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := os.Open(resolvedSrc)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
