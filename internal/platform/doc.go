// Package platform provides cross-platform filesystem primitives including
// symlink creation and permission management. On Unix systems it uses native
// symlinks and chmod directly. On Windows, file links fall back to a copy with
// a .target sidecar when developer mode symlinks are unavailable.
package platform
