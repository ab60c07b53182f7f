// Package discover implements the source-discovery contract of §6: a
// simple directory walker yielding .kt/.java files while skipping build
// artefacts and hidden directories, grounded on the teacher's
// cmd/watch/watcher.go skippedDirs convention.
package discover

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var skippedDirs = map[string]bool{
	"build":       true,
	".gradle":     true,
	"node_modules": true,
}

// Find walks root and returns every regular file path whose extension is
// .kt or .java, excluding any path whose ancestor directory is named
// build, .gradle, node_modules, or begins with a dot.
func Find(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (skippedDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		switch filepath.Ext(path) {
		case ".kt", ".java":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
