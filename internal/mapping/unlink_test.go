package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlinkRemovesOnlyOwnedLinks(t *testing.T) {
	root, shared := newProject(t)
	runtimeRoot := filepath.Join(root, ".claude")
	mappings := []DirectoryMapping{{Source: "prompts", Target: "commands"}, {Source: "skills"}}

	require.NoError(t, LinkMappings(shared, runtimeRoot, mappings))

	local := filepath.Join(runtimeRoot, "commands", "mine.md")
	writeFile(t, local, "mine")
	foreign := filepath.Join(runtimeRoot, "commands", "other.md")
	require.NoError(t, os.Symlink(local, foreign))

	removed, err := Unlink(shared, runtimeRoot, mappings)
	require.NoError(t, err)
	assert.Len(t, removed, 4)

	assert.Equal(t, "mine", readFile(t, local))
	assert.True(t, isLink(t, foreign))
	_, err = os.Stat(filepath.Join(runtimeRoot, "skills"))
	assert.True(t, os.IsNotExist(err), "empty skills dir should be removed")
	assert.Equal(t, "# new spec", readFile(t, filepath.Join(shared, "prompts", "spec-new.md")))
}

func TestUnlinkDirectoryLinkAndEmptyRoot(t *testing.T) {
	root, shared := newProject(t)
	runtimeRoot := filepath.Join(root, ".runtime")
	mappings := []DirectoryMapping{{Source: "prompts", Target: "workflows", LinkMode: LinkDirectory}}

	require.NoError(t, LinkMappings(shared, runtimeRoot, mappings))

	removed, err := Unlink(shared, runtimeRoot, mappings)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(runtimeRoot, "workflows")}, removed)

	_, err = os.Stat(runtimeRoot)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(shared, "prompts", "spec-new.md"))
	assert.NoError(t, err)
}

func TestUnlinkKeepsCopies(t *testing.T) {
	root, shared := newProject(t)
	runtimeRoot := filepath.Join(root, ".kilocode")
	mappings := []DirectoryMapping{{Source: "prompts", Target: "workflows"}}

	require.NoError(t, CopyMappings(shared, runtimeRoot, mappings))

	removed, err := Unlink(shared, runtimeRoot, mappings)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Equal(t, "# new spec", readFile(t, filepath.Join(runtimeRoot, "workflows", "spec-new.md")))
}

func TestUnlinkNothingInstalled(t *testing.T) {
	root, shared := newProject(t)
	removed, err := Unlink(shared, filepath.Join(root, ".codex"), []DirectoryMapping{{Source: "prompts"}})
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestUnlinkDirectoryModeKeepsLinkToSiblingSource(t *testing.T) {
	root, shared := newProject(t)
	runtimeRoot := filepath.Join(root, ".codex")
	mappings := []DirectoryMapping{{Source: "prompts", LinkMode: LinkDirectory}}

	require.NoError(t, os.MkdirAll(runtimeRoot, 0755))
	userLink := filepath.Join(runtimeRoot, "prompts")
	require.NoError(t, os.Symlink(filepath.Join("..", ".agents", "skills"), userLink))

	removed, err := Unlink(shared, runtimeRoot, mappings)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.True(t, isLink(t, userLink), "a link to another shared dir is not ours")
}

func TestUnlinkRemovesFallbackCopies(t *testing.T) {
	root, shared := newProject(t)
	runtimeRoot := filepath.Join(root, ".codex")
	mappings := []DirectoryMapping{{Source: "prompts"}}
	target := filepath.Join(runtimeRoot, "prompts")

	owned := filepath.Join(target, "spec-new.md")
	writeFile(t, owned, "# new spec")
	writeFile(t, owned+".target", filepath.Join("..", "..", ".agents", "prompts", "spec-new.md"))

	foreign := filepath.Join(target, "other.md")
	writeFile(t, foreign, "other")
	writeFile(t, foreign+".target", filepath.Join("..", "..", "elsewhere", "other.md"))

	local := filepath.Join(target, "local.md")
	writeFile(t, local, "local")

	removed, err := Unlink(shared, runtimeRoot, mappings)
	require.NoError(t, err)
	assert.Equal(t, []string{owned}, removed)

	_, err = os.Stat(owned + ".target")
	assert.True(t, os.IsNotExist(err), "sidecar goes with its copy")
	assert.Equal(t, "other", readFile(t, foreign))
	assert.Equal(t, "local", readFile(t, local))
}
