package fs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Walker expands command-line arguments into the files to upload.
type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Expand resolves each argument: a file is taken as is, a directory is walked
// with the include/exclude patterns and anything else is treated as a
// doublestar glob. The result is absolute and free of duplicates, in argument
// order; files found by one directory or glob argument are sorted.
func (w *Walker) Expand(args []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(path string) error {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if _, dup := seen[abs]; !dup {
			seen[abs] = struct{}{}
			files = append(files, abs)
		}
		return nil
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			walked, err := w.Walk(arg)
			if err != nil {
				return nil, err
			}
			for _, f := range walked {
				if err := add(f); err != nil {
					return nil, err
				}
			}
		case err == nil:
			if err := add(arg); err != nil {
				return nil, err
			}
		default:
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, err
			}
			sort.Strings(matches)
			for _, m := range matches {
				if info, err := os.Stat(m); err != nil || info.IsDir() {
					continue
				}
				if w.shouldExclude(filepath.ToSlash(m)) {
					continue
				}
				if err := add(m); err != nil {
					return nil, err
				}
			}
		}
	}

	return files, nil
}

// Walk lists the files under root that match the patterns, as absolute paths.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && (w.shouldExclude(relPath) || w.shouldExclude(relPath+"/")) {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
