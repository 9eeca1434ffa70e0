package runtimes

import (
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

// ClaudeCode exposes the shared prompts as slash commands under .claude/commands.
type ClaudeCode struct {
	runtime.Base
}

func newClaudeCode(base runtime.Base) runtime.Runtime {
	return &ClaudeCode{Base: base}
}

func (r *ClaudeCode) Mappings() []mapping.DirectoryMapping {
	return []mapping.DirectoryMapping{
		{Source: "prompts", Target: "commands"},
		{Source: "skills"},
	}
}

func (r *ClaudeCode) Install(s *runtime.Session) error {
	if err := r.Base.Install(s); err != nil {
		return err
	}
	return r.Apply(s, r.Mappings()...)
}

func (r *ClaudeCode) Uninstall(s *runtime.Session) error {
	if err := r.Base.Uninstall(s); err != nil {
		return err
	}
	_, err := r.Unlink(s, r.Mappings()...)
	return err
}
