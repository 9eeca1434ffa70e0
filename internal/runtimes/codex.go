package runtimes

import (
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

// Codex reads custom prompts from .codex/prompts and skills from .codex/skills.
type Codex struct {
	runtime.Base
}

func newCodex(base runtime.Base) runtime.Runtime {
	return &Codex{Base: base}
}

// Mappings returns the shared directories exposed inside the runtime directory.
func (r *Codex) Mappings() []mapping.DirectoryMapping {
	return []mapping.DirectoryMapping{
		{Source: "prompts"},
		{Source: "skills"},
	}
}

// Install stages the shared assets and maps them into the runtime directory.
func (r *Codex) Install(s *runtime.Session) error {
	if err := r.Base.Install(s); err != nil {
		return err
	}
	return r.Apply(s, r.Mappings()...)
}

// Uninstall removes the links Install created. Copied files are kept.
func (r *Codex) Uninstall(s *runtime.Session) error {
	if err := r.Base.Uninstall(s); err != nil {
		return err
	}
	_, err := r.Unlink(s, r.Mappings()...)
	return err
}
