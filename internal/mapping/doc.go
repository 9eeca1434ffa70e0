// Package mapping makes shared asset directories appear inside a runtime's
// own directory.
//
// A DirectoryMapping names a source directory under the shared assets root
// (.agents) and the name it takes inside the runtime directory. In symlink
// mode each mapping becomes relative symlinks, either one per source entry
// (LinkEntry) or one for the whole directory (LinkDirectory). In copy mode the
// source tree is duplicated, and files present only at the target are kept.
package mapping
