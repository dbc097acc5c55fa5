package runner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/donaldgifford/importcurly/internal/config"
)

// CollectFiles expands paths into the list of source files to process.
// Files named explicitly are always included. Directories are walked
// recursively, skipping hidden directories, node_modules, files without a
// configured extension and anything matching an exclude pattern relative
// to the walked directory.
func CollectFiles(paths []string, cfg config.FilesConfig) ([]string, error) {
	excludes := make([]glob.Glob, 0, len(cfg.Exclude))
	for _, pattern := range cfg.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		excludes = append(excludes, g)
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if path == root {
					return nil
				}
				name := d.Name()
				if name == "node_modules" || strings.HasPrefix(name, ".") || excluded(excludes, rel+"/") {
					return filepath.SkipDir
				}
				return nil
			}

			if hasExtension(path, cfg.Extensions) && !excluded(excludes, rel) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

func excluded(excludes []glob.Glob, rel string) bool {
	for _, g := range excludes {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}
