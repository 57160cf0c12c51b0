package genfix

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type PathResolver struct {
	wd string
}

func NewPathResolver() (*PathResolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("could not get current working directory: %w", err)
	}
	return &PathResolver{wd: wd}, nil
}

func (r *PathResolver) Resolve(relativePath string) string {
	if filepath.IsAbs(relativePath) {
		return filepath.Clean(relativePath)
	}
	return filepath.Join(r.wd, relativePath)
}

func (r *PathResolver) Relative(path string) string {
	if rel, err := filepath.Rel(r.wd, path); err == nil {
		return rel
	}
	return path
}

// Directories never descended into: generated output and the dependency cache.
var excludedDirs = map[string]struct{}{
	"_generated":   {},
	"node_modules": {},
}

// DiscoverFiles walks root and returns every regular file whose extension is
// allowed, skipping excluded directories at any depth.
func DiscoverFiles(root string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := excludedDirs[d.Name()]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !HasAllowedExtension(path, extensions) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

func HasAllowedExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// SubstitutionPath computes the require specifier for the generated module as
// seen from file: relative, forward slashes, always anchored with ./ or ../
// so module resolution treats it as a path.
func SubstitutionPath(file, generated string) string {
	rel, err := filepath.Rel(filepath.Dir(file), generated)
	if err != nil {
		rel = generated
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}
