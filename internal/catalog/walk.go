package catalog

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultIgnoreDirs are common directories to skip during traversal
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", ".git", "dist", "build", "tmp",
}

// SchemaFiles returns every file under root whose name ends in one of
// extensions, in lexical order. Hidden files and directories and
// DefaultIgnoreDirs are skipped. When root is a file it is returned as is.
func SchemaFiles(root string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path == root && !d.IsDir() {
			files = append(files, path)
			return nil
		}

		// Skip hidden files/directories
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			for _, ignore := range DefaultIgnoreDirs {
				if d.Name() == ignore {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if hasExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
