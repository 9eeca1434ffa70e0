package mapping

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Mode selects how mappings are materialized.
type Mode string

const (
	ModeSymlink Mode = "symlink"
	ModeCopy    Mode = "copy"
)

// DefaultMode is used when no mode has been configured.
const DefaultMode = ModeSymlink

// ParseMode converts a user-supplied string to a Mode. It is case-insensitive
// and treats an empty string as the default.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultMode, nil
	case ModeSymlink:
		return ModeSymlink, nil
	case ModeCopy:
		return ModeCopy, nil
	}
	return "", fmt.Errorf("unknown install mode %q (valid: %s, %s)", s, ModeSymlink, ModeCopy)
}

// AllModes returns the supported modes, default first.
func AllModes() []Mode {
	return []Mode{ModeSymlink, ModeCopy}
}

// LinkMode sets the granularity of symlink-mode links.
type LinkMode string

const (
	// LinkEntry keeps a real target directory and links each source entry into it.
	LinkEntry LinkMode = "entry"
	// LinkDirectory replaces the target directory with one link to the source.
	LinkDirectory LinkMode = "directory"
)

// DirectoryMapping describes how one shared asset directory appears inside a
// runtime directory. Target defaults to Source and LinkMode to LinkEntry.
type DirectoryMapping struct {
	Source   string
	Target   string
	LinkMode LinkMode
}

// TargetName returns the directory name used inside the runtime directory.
func (m DirectoryMapping) TargetName() string {
	if m.Target == "" {
		return m.Source
	}
	return m.Target
}

// Granularity returns the effective link mode.
func (m DirectoryMapping) Granularity() LinkMode {
	if m.LinkMode == "" {
		return LinkEntry
	}
	return m.LinkMode
}

func (m DirectoryMapping) dirs(sharedRoot, runtimeRoot string) (string, string) {
	return filepath.Join(sharedRoot, m.Source), filepath.Join(runtimeRoot, m.TargetName())
}

// Apply materializes mappings with the strategy selected by mode.
func Apply(mode Mode, sharedRoot, runtimeRoot string, mappings []DirectoryMapping) error {
	switch mode {
	case ModeCopy:
		return CopyMappings(sharedRoot, runtimeRoot, mappings)
	case ModeSymlink, "":
		return LinkMappings(sharedRoot, runtimeRoot, mappings)
	}
	return fmt.Errorf("unknown install mode %q", mode)
}
