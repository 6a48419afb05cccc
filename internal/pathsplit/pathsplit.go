// Package pathsplit decomposes source paths into directory and filename parts.
package pathsplit

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/On-Jun9/ShutterStamp/pkg/types"
)

// Split breaks p into its directory and base filename. It returns false for
// an empty path.
//
// Dir and Name are the original values, so filepath.Join(Dir, Name) yields a
// path equivalent to p. The extension is everything after the last dot of
// Name; a name without a dot has an empty Ext. SafeDir and SafeStem are the
// hyphenated forms used for display.
func Split(p string) (types.SplitPath, bool) {
	if p == "" {
		return types.SplitPath{}, false
	}

	dir, name := filepath.Split(p)
	dir = trimDir(dir)

	stem, ext := name, ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		stem, ext = name[:i], name[i+1:]
	}

	return types.SplitPath{
		Dir:      dir,
		Name:     name,
		Ext:      ext,
		SafeDir:  strings.ReplaceAll(dir, " ", "-"),
		SafeStem: sanitizeStem(stem),
	}, true
}

// trimDir drops trailing separators, keeping a bare root ("/", `C:\`).
func trimDir(dir string) string {
	root := filepath.VolumeName(dir) + string(filepath.Separator)
	for len(dir) > 0 && dir != root && os.IsPathSeparator(dir[len(dir)-1]) {
		dir = dir[:len(dir)-1]
	}
	return dir
}

func sanitizeStem(stem string) string {
	stem = strings.ReplaceAll(stem, " ", "-")
	return strings.ReplaceAll(stem, ".", "-")
}
