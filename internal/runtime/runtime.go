package runtime

import (
	"path/filepath"

	"github.com/simplespec-labs/simplespec/internal/mapping"
)

// Runtime is one installable agent tool integration.
type Runtime interface {
	ID() string
	DisplayName() string
	// Dir is the runtime's directory relative to the installation root.
	Dir() string
	Install(s *Session) error
	Uninstall(s *Session) error
}

// Mapper is implemented by runtimes that expose shared asset directories
// inside their own directory.
type Mapper interface {
	Mappings() []mapping.DirectoryMapping
}

// Base carries a runtime's registered identity and the lifecycle steps
// shared by every variant. Only a Registry produces a usable Base.
type Base struct {
	id          string
	displayName string
	dir         string
}

// NewBase always fails: bases are handed to constructors by the Registry.
func NewBase(id string) (Base, error) {
	return Base{}, &DirectConstructionError{ID: id}
}

func (b Base) ID() string          { return b.id }
func (b Base) DisplayName() string { return b.displayName }
func (b Base) Dir() string         { return b.dir }

func (b Base) validate() error {
	if b.id == "" {
		return &DirectConstructionError{}
	}
	return nil
}

// Install runs the global staging step. Only the first call in a session does
// any work.
func (b Base) Install(s *Session) error {
	if err := b.validate(); err != nil {
		return err
	}
	return s.StageGlobalAssets()
}

// Uninstall has no shared behavior beyond validating the base.
func (b Base) Uninstall(s *Session) error {
	return b.validate()
}

// Root returns the absolute runtime directory for the session's project.
func (b Base) Root(s *Session) string {
	return filepath.Join(s.Root(), b.dir)
}

// Apply materializes mappings inside the runtime directory using the
// session's install mode.
func (b Base) Apply(s *Session, mappings ...mapping.DirectoryMapping) error {
	if err := b.validate(); err != nil {
		return err
	}
	s.log.Info().Str("runtime", b.id).Str("mode", string(s.Mode())).Msgf("Installing %s runtime", b.displayName)
	return mapping.Apply(s.Mode(), s.SharedRoot(), b.Root(s), mappings)
}

// Unlink removes the links mappings created inside the runtime directory.
func (b Base) Unlink(s *Session, mappings ...mapping.DirectoryMapping) ([]string, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return mapping.Unlink(s.SharedRoot(), b.Root(s), mappings)
}

// Inspect reports the state of every path mappings would produce.
func (b Base) Inspect(s *Session, mappings ...mapping.DirectoryMapping) ([]mapping.EntryStatus, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	return mapping.Inspect(s.SharedRoot(), b.Root(s), mappings)
}
