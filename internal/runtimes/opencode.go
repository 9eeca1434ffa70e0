package runtimes

import (
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

// OpenCode uses singular directory names for commands and skills.
type OpenCode struct {
	runtime.Base
}

func newOpenCode(base runtime.Base) runtime.Runtime {
	return &OpenCode{Base: base}
}

func (r *OpenCode) Mappings() []mapping.DirectoryMapping {
	return []mapping.DirectoryMapping{
		{Source: "prompts", Target: "command"},
		{Source: "skills", Target: "skill"},
	}
}

func (r *OpenCode) Install(s *runtime.Session) error {
	if err := r.Base.Install(s); err != nil {
		return err
	}
	return r.Apply(s, r.Mappings()...)
}

func (r *OpenCode) Uninstall(s *runtime.Session) error {
	if err := r.Base.Uninstall(s); err != nil {
		return err
	}
	_, err := r.Unlink(s, r.Mappings()...)
	return err
}
