package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCreateSymlink(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "target.md")
	if err := os.WriteFile(targetPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "link.md")
	if err := CreateSymlink(targetPath, linkPath, KindFile); err != nil {
		t.Fatalf("CreateSymlink failed: %v", err)
	}

	data, err := os.ReadFile(linkPath)
	if err != nil {
		t.Fatalf("reading link: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("link content = %q, want %q", string(data), "hello")
	}
}

func TestCreateSymlinkRelativeDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory symlinks need developer mode on Windows")
	}
	tmp := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmp, "shared", "prompts"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(tmp, "runtime"), 0755); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "runtime", "prompts")
	rel := filepath.Join("..", "shared", "prompts")
	if err := CreateSymlink(rel, linkPath, KindDir); err != nil {
		t.Fatalf("CreateSymlink (dir) failed: %v", err)
	}

	target, err := os.Readlink(linkPath)
	if err != nil {
		t.Fatalf("Readlink failed: %v", err)
	}
	if target != rel {
		t.Errorf("symlink target = %q, want %q", target, rel)
	}
	if !IsSymlink(linkPath) {
		t.Error("IsSymlink returned false for a directory link")
	}
}

func TestRemoveSymlink(t *testing.T) {
	tmp := t.TempDir()

	targetPath := filepath.Join(tmp, "target.txt")
	if err := os.WriteFile(targetPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "link.txt")
	if err := CreateSymlink(targetPath, linkPath, KindFile); err != nil {
		t.Fatal(err)
	}

	if err := RemoveSymlink(linkPath); err != nil {
		t.Fatalf("RemoveSymlink failed: %v", err)
	}

	if _, err := os.Lstat(linkPath); !os.IsNotExist(err) {
		t.Error("link still exists after RemoveSymlink")
	}
	if _, err := os.Stat(targetPath); err != nil {
		t.Errorf("target removed along with link: %v", err)
	}
}

func TestResolveSymlink(t *testing.T) {
	tmp := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmp, "a"), 0755); err != nil {
		t.Fatal(err)
	}
	targetPath := filepath.Join(tmp, "target.txt")
	if err := os.WriteFile(targetPath, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	linkPath := filepath.Join(tmp, "a", "link.txt")
	if err := CreateSymlink(filepath.Join("..", "target.txt"), linkPath, KindFile); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveSymlink(linkPath)
	if err != nil {
		t.Fatalf("ResolveSymlink failed: %v", err)
	}
	if got != targetPath {
		t.Errorf("ResolveSymlink = %q, want %q", got, targetPath)
	}
}

func TestIsSymlinkOnRegularFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "plain.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if IsSymlink(path) {
		t.Error("IsSymlink returned true for a regular file")
	}
	if IsSymlink(filepath.Join(tmp, "missing")) {
		t.Error("IsSymlink returned true for a missing path")
	}
}

func TestFallbackCopyWithSidecar(t *testing.T) {
	tmp := t.TempDir()
	copied := filepath.Join(tmp, "spec-new.md")
	if err := os.WriteFile(copied, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if IsFallbackCopy(copied) {
		t.Error("IsFallbackCopy returned true without a sidecar")
	}

	target := filepath.Join("..", "shared", "spec-new.md")
	if err := os.WriteFile(copied+".target", []byte(target+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if !IsFallbackCopy(copied) {
		t.Error("IsFallbackCopy returned false with a sidecar")
	}
	if !IsSidecar("spec-new.md.target") || IsSidecar("spec-new.md") {
		t.Error("IsSidecar misclassified names")
	}

	got, err := ResolveSymlink(copied)
	if err != nil {
		t.Fatalf("ResolveSymlink: %v", err)
	}
	if want := filepath.Join(filepath.Dir(tmp), "shared", "spec-new.md"); got != want {
		t.Errorf("ResolveSymlink = %q, want %q", got, want)
	}
}

func TestIsSymlinkSupported(t *testing.T) {
	if runtime.GOOS != "windows" && !IsSymlinkSupported() {
		t.Error("IsSymlinkSupported returned false on Unix")
	}
}

func TestKindString(t *testing.T) {
	if KindFile.String() != "file" || KindDir.String() != "dir" {
		t.Errorf("unexpected kind strings: %s, %s", KindFile, KindDir)
	}
}
