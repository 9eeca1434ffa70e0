package assets

import (
	"fmt"
	"path/filepath"

	"github.com/simplespec-labs/simplespec/internal/logging"
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/paths"
)

// MissingSourceAssetsError is returned when no candidate source has all of
// the staged directories.
type MissingSourceAssetsError struct {
	Dir      string
	Searched []string
}

func (e *MissingSourceAssetsError) Error() string {
	return fmt.Sprintf("unable to locate source assets directory %q (searched %d locations)", e.Dir, len(e.Searched))
}

// stagedDir is one source directory copied during staging.
type stagedDir struct {
	name string
	dest func(root string) string
	skip mapping.SkipFunc
}

var stagedDirs = []stagedDir{
	{
		name: paths.PromptsDir,
		dest: func(root string) string { return filepath.Join(paths.SharedRoot(root), paths.PromptsDir) },
	},
	{
		name: paths.SkillsDir,
		dest: func(root string) string { return filepath.Join(paths.SharedRoot(root), paths.SkillsDir) },
	},
	{
		name: paths.BundleMetaDir,
		dest: paths.MetaRoot,
		skip: skipSpecs,
	},
}

// skipSpecs keeps user-authored specs out of every refresh.
func skipSpecs(rel string, isDir bool) bool {
	return isDir && rel == paths.SpecsDir
}

// Stager copies the shared assets into a project.
type Stager struct {
	sources []Source
}

// NewStager returns a Stager reading from sources in order. With no sources
// it uses DefaultSources.
func NewStager(sources ...Source) *Stager {
	if len(sources) == 0 {
		sources = DefaultSources()
	}
	return &Stager{sources: sources}
}

// Stage copies prompts and skills into <root>/.agents and the framework files
// into <root>/.simplespec. All directories come from one source: the first
// candidate holding every staged directory. Existing files are overwritten and
// nothing is pruned. A missing source leaves the project untouched.
func (s *Stager) Stage(root string) error {
	log := logging.GetLogger("assets")

	src, err := s.resolve()
	if err != nil {
		return err
	}
	log.Debug().Str("source", src.Name).Str("path", src.Root).Msg("resolved asset source")

	for _, dir := range stagedDirs {
		dest := dir.dest(root)
		if err := mapping.CopyTree(src.FS, src.Path(dir.name), dest, dir.skip); err != nil {
			return fmt.Errorf("staging %s: %w", dir.name, err)
		}
		log.Debug().Str("dir", dir.name).Str("source", src.Name).Str("dest", dest).Msg("staged")
	}
	return nil
}

// resolve returns the first source that has every staged directory. When
// none does, the error names the first directory no source has, or else the
// first one the highest-priority source lacks.
func (s *Stager) resolve() (Source, error) {
	log := logging.GetLogger("assets")

	var firstGap string
	for _, src := range s.sources {
		missing := missingDir(src)
		if missing == "" {
			return src, nil
		}
		if firstGap == "" {
			firstGap = missing
		}
		log.Debug().Str("source", src.Name).Str("missing", missing).Msg("skipping incomplete asset source")
	}

	dir := firstGap
	for _, d := range stagedDirs {
		if !s.anyHas(d.name) {
			dir = d.name
			break
		}
	}
	if dir == "" && len(stagedDirs) > 0 {
		dir = stagedDirs[0].name
	}

	searched := make([]string, 0, len(s.sources))
	for _, src := range s.sources {
		searched = append(searched, src.Path(dir))
	}
	return Source{}, &MissingSourceAssetsError{Dir: dir, Searched: searched}
}

func missingDir(src Source) string {
	for _, d := range stagedDirs {
		if !src.Has(d.name) {
			return d.name
		}
	}
	return ""
}

func (s *Stager) anyHas(dir string) bool {
	for _, src := range s.sources {
		if src.Has(dir) {
			return true
		}
	}
	return false
}
