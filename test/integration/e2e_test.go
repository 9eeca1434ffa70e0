//go:build integration

package integration_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/simplespec-labs/simplespec/internal/assets"
	"github.com/simplespec-labs/simplespec/internal/mapping"
	"github.com/simplespec-labs/simplespec/internal/paths"
	"github.com/simplespec-labs/simplespec/internal/project"
	"github.com/simplespec-labs/simplespec/internal/runtime"
	"github.com/simplespec-labs/simplespec/internal/runtimes"
)

// TestFullFlowInstallAllRuntimes tests the complete flow:
// resolve root -> stage assets from SIMPLESPEC_HOME -> link every runtime ->
// record the install -> uninstall one runtime.
func TestFullFlowInstallAllRuntimes(t *testing.T) {
	env := setupTestEnv(t)
	setupAssets(t, env.HomeDir)

	// Step 1: Simulate a package manager running the installer from its own
	// package directory.
	chdir(t, env.PackageDir)
	t.Setenv("INIT_CWD", env.ProjectDir)
	t.Setenv("npm_package_json", filepath.Join(env.PackageDir, "package.json"))

	root, err := paths.ResolveInstallationRoot()
	if err != nil {
		t.Fatalf("ResolveInstallationRoot: %v", err)
	}
	if root != env.ProjectDir {
		t.Fatalf("root = %s, want %s", root, env.ProjectDir)
	}

	// Step 2: Install every built-in runtime.
	reg := runtime.NewRegistry()
	runtimes.Load(reg)
	session := runtime.NewSession(root, runtime.WithStager(assets.NewStager()))

	var ids []string
	for _, info := range reg.ListAvailable() {
		ids = append(ids, info.ID)
	}
	if err := reg.InstallAll(session, ids); err != nil {
		t.Fatalf("InstallAll: %v", err)
	}

	// Step 3: Verify staging came from SIMPLESPEC_HOME and skipped specs.
	assertFileContains(t, filepath.Join(root, ".agents", "prompts", "spec-new.md"), "spec-new v1")
	assertFileContains(t, filepath.Join(root, ".simplespec", "templates", "spec.md"), "template v1")
	assertFileNotExists(t, filepath.Join(root, ".simplespec", "specs"))

	// Step 4: Verify every runtime layout.
	assertSymlinkTo(t, filepath.Join(root, ".codex", "prompts", "spec-new.md"), "../../.agents/prompts/spec-new.md")
	assertSymlinkTo(t, filepath.Join(root, ".kilocode", "workflows", "spec-new.md"), "../../.agents/prompts/spec-new.md")
	assertSymlinkTo(t, filepath.Join(root, ".claude", "commands", "spec-plan.md"), "../../.agents/prompts/spec-plan.md")
	assertSymlinkTo(t, filepath.Join(root, ".opencode", "skill", "simplespec"), "../../.agents/skills/simplespec")

	// Step 5: Record and reload the install.
	if _, err := project.RecordInstall(root, "1.0.0", string(session.Mode()), ids, time.Now()); err != nil {
		t.Fatalf("RecordInstall: %v", err)
	}
	rec, err := project.Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rec.Runtimes) != len(ids) {
		t.Errorf("recorded %d runtimes, want %d", len(rec.Runtimes), len(ids))
	}

	// Step 6: Uninstall one runtime and check nothing else moved.
	codex, err := reg.Get("codex")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := codex.Uninstall(session); err != nil {
		t.Fatalf("Uninstall: %v", err)
	}
	if err := project.RecordUninstall(root, []string{"codex"}); err != nil {
		t.Fatalf("RecordUninstall: %v", err)
	}

	assertFileNotExists(t, filepath.Join(root, ".codex"))
	assertSymlinkTo(t, filepath.Join(root, ".kilocode", "workflows", "spec-new.md"), "../../.agents/prompts/spec-new.md")
	assertFileExists(t, filepath.Join(root, ".agents", "prompts", "spec-new.md"))

	if session.Mode() != mapping.ModeSymlink {
		t.Errorf("mode = %s, want symlink", session.Mode())
	}
}
