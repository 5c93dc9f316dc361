package substitute

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// IgnoreSet is a set of entries excluded from substitution. An entry is a
// slash-separated path relative to the destination root, a directory name or
// a doublestar glob pattern.
type IgnoreSet map[string]bool

// NewIgnoreSet creates an ignore set from the entries list.
func NewIgnoreSet(entries ...string) IgnoreSet {
	set := make(IgnoreSet, len(entries))
	for _, entry := range entries {
		set[entry] = true
	}
	return set
}

// Matches reports whether the file at slash-separated relative path rel must
// be skipped. The file is skipped if its path is in the set, if the base name
// of any ancestor directory is in the set, or if it matches a glob entry.
// Directory names are matched at any depth: ignoring "docs" skips both
// "docs/a.md" and "src/docs/b.md".
func (set IgnoreSet) Matches(rel string) bool {
	if set[rel] {
		return true
	}

	for dir := path.Dir(rel); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if set[path.Base(dir)] {
			return true
		}
	}

	for entry := range set {
		if !strings.ContainsAny(entry, "*?[{") {
			continue
		}
		if matched, err := doublestar.Match(entry, rel); err == nil && matched {
			return true
		}
	}

	return false
}
