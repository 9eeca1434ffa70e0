// Package runtimes contains the built-in runtime variants and the static list
// that registers them. Each variant maps the shared prompts and skills into
// the directory layout its agent tool reads.
package runtimes
