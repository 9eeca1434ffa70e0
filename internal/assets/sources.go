package assets

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/simplespec-labs/simplespec/internal/branding"
	"github.com/simplespec-labs/simplespec/internal/paths"
)

//go:embed all:bundle
var bundle embed.FS

const bundleRoot = "bundle"

// Source is one candidate location holding asset directories.
type Source struct {
	Name string
	FS   afero.Fs
	Root string
}

// Has reports whether the source contains dir as a directory.
func (s Source) Has(dir string) bool {
	info, err := s.FS.Stat(s.Path(dir))
	return err == nil && info.IsDir()
}

// Path returns the location of dir inside the source.
func (s Source) Path(dir string) string {
	return filepath.Join(s.Root, dir)
}

// DirSource returns a source backed by a directory on the local filesystem.
func DirSource(name, dir string) Source {
	return Source{Name: name, FS: afero.NewOsFs(), Root: dir}
}

// Embedded returns the asset bundle compiled into the binary.
func Embedded() Source {
	return Source{Name: "embedded", FS: afero.FromIOFS{FS: bundle}, Root: bundleRoot}
}

// DefaultSources returns the candidate sources in priority order.
func DefaultSources() []Source {
	var sources []Source

	if home := os.Getenv(branding.EnvVar("HOME")); home != "" {
		sources = append(sources, DirSource(branding.EnvVar("HOME"), filepath.Join(home, paths.AssetsDir)))
	}

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		sources = append(sources,
			DirSource("executable", filepath.Join(dir, "..", paths.AssetsDir)),
			DirSource("executable", filepath.Join(dir, "..", "..", paths.AssetsDir)),
		)
	}

	if cwd, err := os.Getwd(); err == nil {
		sources = append(sources, DirSource("working directory", filepath.Join(cwd, paths.AssetsDir)))
	}

	return append(sources, Embedded())
}
