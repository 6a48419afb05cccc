package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AllFiles selects every name with an extension.
var AllFiles = []string{"*.*"}

// JPGFiles selects .jpg and .JPG only.
var JPGFiles = []string{"*.jpg", "*.JPG"}

// Scanner lists files in a single directory whose names match glob patterns.
// It does not descend into subdirectories.
type Scanner struct {
	patterns []string
}

func New(patterns []string) *Scanner {
	if len(patterns) == 0 {
		patterns = AllFiles
	}
	return &Scanner{patterns: patterns}
}

// ForJPGOnly returns the scanner used by the --jpg flag.
func ForJPGOnly(jpgOnly bool) *Scanner {
	if jpgOnly {
		return New(JPGFiles)
	}
	return New(AllFiles)
}

// Scan returns matching paths under root, grouped per pattern in pattern
// order. Hidden names are skipped like a shell glob does.
func (s *Scanner) Scan(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range s.patterns {
		for _, d := range dirEntries {
			name := d.Name()
			if d.IsDir() || strings.HasPrefix(name, ".") || seen[name] {
				continue
			}

			ok, err := filepath.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}

			seen[name] = true
			paths = append(paths, filepath.Join(root, name))
		}
	}

	return paths, nil
}
