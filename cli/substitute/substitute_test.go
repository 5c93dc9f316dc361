package substitute

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		filePath := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(content)
}

func TestTree(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"greeting.txt":       "Hello <name>!",
		"t2.meta.toml":       `name = "<name>"`,
		"notes.txt":          "<secret>",
		"docs/readme.md":     "<secret> <name>",
		"src/docs/inner.md":  "<name>",
		"src/main.go":        "// <NAME>: <Secret>",
		"src/sub/notes.txt":  "<secret>",
		"assets/logo.png.in": "<name>",
	})

	ignored := NewIgnoreSet("t2.meta.toml", "notes.txt", "docs")
	binding := Binding{{"name", "Ada"}, {"secret", "x"}}
	require.NoError(t, Tree(root, ignored, binding))

	assert.Equal(t, "Hello Ada!", readFile(t, root, "greeting.txt"))
	assert.Equal(t, `name = "<name>"`, readFile(t, root, "t2.meta.toml"))
	assert.Equal(t, "<secret>", readFile(t, root, "notes.txt"))
	assert.Equal(t, "<secret> <name>", readFile(t, root, "docs/readme.md"))
	assert.Equal(t, "<name>", readFile(t, root, "src/docs/inner.md"))
	assert.Equal(t, "// Ada: x", readFile(t, root, "src/main.go"))
	// Ignored paths are matched by the full relative path.
	assert.Equal(t, "x", readFile(t, root, "src/sub/notes.txt"))
	assert.Equal(t, "Ada", readFile(t, root, "assets/logo.png.in"))
}

func TestTreeNoBindings(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.txt":     "<a> <B>",
		"sub/b.txt": "plain",
	}
	writeFiles(t, root, files)

	require.NoError(t, Tree(root, NewIgnoreSet(), nil))

	for rel, content := range files {
		assert.Equal(t, content, readFile(t, root, rel))
	}
}

func TestTreeNotTextFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "image.bin"),
		[]byte{0xff, 0xd8, 0xff, 0xe0}, 0644))

	err := Tree(root, NewIgnoreSet(), Binding{{"name", "Ada"}})
	assert.ErrorContains(t, err, "variables substitution failed")

	// Binary files may be excluded explicitly.
	require.NoError(t, Tree(root, NewIgnoreSet("*.bin"), Binding{{"name", "Ada"}}))
}

func TestTreeMissingRoot(t *testing.T) {
	err := Tree(filepath.Join(t.TempDir(), "missing"), NewIgnoreSet(), nil)
	assert.ErrorContains(t, err, "variables substitution failed")
}
