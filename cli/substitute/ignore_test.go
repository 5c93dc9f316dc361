package substitute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIgnoreSetMatches(t *testing.T) {
	set := NewIgnoreSet("notes.txt", "docs", "t1.meta.toml", "assets/**/*.png", "*.lock")

	testCases := map[string]bool{
		"notes.txt":              true,
		"t1.meta.toml":           true,
		"docs/readme.md":         true,
		"docs/deep/more.md":      true,
		"src/docs/readme.md":     true,
		"assets/img/logo.png":    true,
		"assets/logo.png":        true,
		"go.lock":                true,
		"sub/notes.txt":          false,
		"docs.md":                false,
		"src/main.go":            false,
		"assets/img/logo.svg":    false,
		"vendor/go.lock":         false,
		"greeting.txt":           false,
		"documentation/index.md": false,
	}

	for rel, expected := range testCases {
		assert.Equal(t, expected, set.Matches(rel), rel)
	}
}

func TestIgnoreSetEmpty(t *testing.T) {
	set := NewIgnoreSet()
	assert.False(t, set.Matches("a/b/c.txt"))
	assert.False(t, set.Matches("c.txt"))
}
