// Package materialize copies a template file tree into a destination directory.
package materialize

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/modulus-cli/modulus/cli/util"
	"github.com/otiai10/copy"
)

const defaultDirPermissions = os.FileMode(0755)

// CopyDirectory copies src tree into dst. Missing dst directories are created,
// directories are created before their content, existing files are overwritten.
// Symbolic links are followed. The first I/O error aborts the copy, already
// copied files are left in place.
func CopyDirectory(src string, dst string) error {
	if !util.IsDir(src) {
		return fmt.Errorf("template directory %q does not exist", src)
	}

	if err := util.CreateDirectory(dst, defaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create destination directory %q: %w", dst, err)
	}

	opts := copy.Options{
		OnSymlink: func(string) copy.SymlinkAction {
			return copy.Deep
		},
		OnDirExists: func(string, string) copy.DirExistsAction {
			return copy.Merge
		},
		Skip: func(srcInfo os.FileInfo, srcPath, dstPath string) (bool, error) {
			log.Debugf("Copying %s to %s", srcPath, dstPath)
			return false, nil
		},
	}
	if err := copy.Copy(src, dst, opts); err != nil {
		return fmt.Errorf("template copying failed: %w", err)
	}

	return nil
}
