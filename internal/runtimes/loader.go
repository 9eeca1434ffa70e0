package runtimes

import (
	"github.com/simplespec-labs/simplespec/internal/runtime"
)

// ID identifies a built-in runtime.
type ID string

const (
	IDCodex      ID = "codex"
	IDKilocode   ID = "kilocode"
	IDClaudeCode ID = "claude-code"
	IDOpenCode   ID = "opencode"
)

type definition struct {
	id   ID
	name string
	dir  string
	ctor runtime.Constructor
}

// builtins is registered in this order, which is also the display order.
var builtins = []definition{
	{IDCodex, "Codex", ".codex", newCodex},
	{IDKilocode, "Kilo Code", ".kilocode", newKilocode},
	{IDClaudeCode, "Claude Code", ".claude", newClaudeCode},
	{IDOpenCode, "OpenCode", ".opencode", newOpenCode},
}

// Load registers every built-in runtime. Calling it again re-registers the
// same descriptors.
func Load(reg *runtime.Registry) {
	for _, d := range builtins {
		reg.Register(string(d.id), d.name, d.dir, d.ctor)
	}
}

// All returns the built-in runtime identifiers in display order.
func All() []ID {
	ids := make([]ID, len(builtins))
	for i, d := range builtins {
		ids[i] = d.id
	}
	return ids
}

// ParseID converts a string to a built-in ID, returning false if unknown.
func ParseID(s string) (ID, bool) {
	for _, d := range builtins {
		if string(d.id) == s {
			return d.id, true
		}
	}
	return "", false
}
