package runtimes

import (
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

// Kilocode exposes the shared prompts as Kilo Code workflows.
type Kilocode struct {
	runtime.Base
}

func newKilocode(base runtime.Base) runtime.Runtime {
	return &Kilocode{Base: base}
}

// Mappings returns the shared directories exposed inside the runtime directory.
func (r *Kilocode) Mappings() []mapping.DirectoryMapping {
	return []mapping.DirectoryMapping{
		{Source: "prompts", Target: "workflows"},
		{Source: "skills"},
	}
}

// Install stages the shared assets and maps them into the runtime directory.
func (r *Kilocode) Install(s *runtime.Session) error {
	if err := r.Base.Install(s); err != nil {
		return err
	}
	return r.Apply(s, r.Mappings()...)
}

// Uninstall removes workflow links. Hand-authored workflows and copies stay.
func (r *Kilocode) Uninstall(s *runtime.Session) error {
	if err := r.Base.Uninstall(s); err != nil {
		return err
	}
	_, err := r.Unlink(s, r.Mappings()...)
	return err
}
