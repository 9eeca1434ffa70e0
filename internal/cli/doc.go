// Package cli defines the Cobra command tree for the simplespec CLI. Each file
// in this package registers one top-level command (install, list, status, etc.)
// with the root command. Commands resolve the installation root, build a
// runtime session and delegate the work to the runtime, project and telemetry
// packages; they only handle flags, prompts and output formatting.
package cli
