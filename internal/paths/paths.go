// Package paths resolves the installation root and names the directories
// that make up an installed project.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Directory and file name constants for the installed layout.
const (
	SharedDir     = ".agents"
	PromptsDir    = "prompts"
	SkillsDir     = "skills"
	MetaDir       = ".simplespec"
	SpecsDir      = "specs"
	RecordFile    = "install.yaml"
	AssetsDir     = "assets"
	BundleMetaDir = "simplespec"
)

// Environment variables set by npm-style package managers while running
// lifecycle scripts.
const (
	EnvInitCwd        = "INIT_CWD"
	EnvNpmPackageJSON = "npm_package_json"
)

// ResolveInstallationRoot returns the directory the installer should operate on.
// It is the current working directory, unless a package manager moved the
// process into its own package directory. In that case INIT_CWD, the directory
// the user invoked the package manager from, is returned instead.
func ResolveInstallationRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	initCwd := strings.TrimSpace(os.Getenv(EnvInitCwd))
	pkgJSON := os.Getenv(EnvNpmPackageJSON)
	if initCwd == "" || pkgJSON == "" {
		return cwd, nil
	}

	if samePath(cwd, filepath.Dir(pkgJSON)) {
		return initCwd, nil
	}
	return cwd, nil
}

// SharedRoot returns <root>/.agents.
func SharedRoot(root string) string {
	return filepath.Join(root, SharedDir)
}

// MetaRoot returns <root>/.simplespec.
func MetaRoot(root string) string {
	return filepath.Join(root, MetaDir)
}

// RecordPath returns the path of the install record under root.
func RecordPath(root string) string {
	return filepath.Join(root, MetaDir, RecordFile)
}

func samePath(a, b string) bool {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return filepath.Clean(absA) == filepath.Clean(absB)
}
