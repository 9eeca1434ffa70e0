//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // SIMPLESPEC_HOME, contains assets/
	ProjectDir string // A mock project directory
	PackageDir string // A mock package-manager script directory
}

// setupTestEnv creates isolated temp directories and sets environment variables
// so staging reads the synthetic assets instead of the embedded bundle.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		PackageDir: t.TempDir(),
	}

	t.Setenv("SIMPLESPEC_HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("INIT_CWD", "")
	t.Setenv("npm_package_json", "")

	return env
}

// setupAssets writes a synthetic asset tree into homeDir/assets and returns it.
func setupAssets(t *testing.T, homeDir string) string {
	t.Helper()

	assetsDir := filepath.Join(homeDir, "assets")

	writeFile(t, filepath.Join(assetsDir, "prompts", "spec-new.md"), "# spec-new v1\n")
	writeFile(t, filepath.Join(assetsDir, "prompts", "spec-plan.md"), "# spec-plan v1\n")
	writeFile(t, filepath.Join(assetsDir, "skills", "simplespec", "SKILL.md"), "---\nname: simplespec\n---\n")
	writeFile(t, filepath.Join(assetsDir, "simplespec", "README.md"), "managed\n")
	writeFile(t, filepath.Join(assetsDir, "simplespec", "templates", "spec.md"), "# template v1\n")
	writeFile(t, filepath.Join(assetsDir, "simplespec", "specs", "README.md"), "bundled specs readme\n")

	return assetsDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertSymlinkTo(t *testing.T, path, want string) {
	t.Helper()
	target, err := os.Readlink(path)
	if err != nil {
		t.Errorf("expected symlink at %s: %v", path, err)
		return
	}
	if filepath.IsAbs(target) {
		t.Errorf("symlink %s has absolute target %s", path, target)
	}
	if filepath.ToSlash(target) != want {
		t.Errorf("symlink %s -> %s, want %s", path, target, want)
	}
}

func assertRegularFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Lstat(path)
	if err != nil {
		t.Errorf("expected file at %s: %v", path, err)
		return
	}
	if !info.Mode().IsRegular() {
		t.Errorf("expected regular file at %s, got mode %s", path, info.Mode())
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q", path, substr)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}
