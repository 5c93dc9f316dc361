package substitute

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/apex/log"
)

// Tree renders every regular file under root which is not matched by the
// ignore set. The first error aborts the walk.
func Tree(root string, ignored IgnoreSet, binding Binding) error {
	engine := NewDefaultEngine()

	err := filepath.WalkDir(root, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, filePath)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if ignored.Matches(rel) {
			log.Debugf("Skipping ignored %s", rel)
			return nil
		}

		log.Debugf("Substituting variables in %s", rel)
		return engine.RenderFile(filePath, binding)
	})
	if err != nil {
		return fmt.Errorf("variables substitution failed: %w", err)
	}

	return nil
}
