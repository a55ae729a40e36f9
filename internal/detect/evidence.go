// evidence.go provides the filesystem checks that every stack predicate is built from.
package detect

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
)

// errFound stops a directory walk once a match has been seen.
var errFound = errors.New("match found")

// hasMatch reports whether any entry below root (files and directories, any
// depth) has a base name matching pattern. Patterns use doublestar syntax,
// so alternatives like "*.{csproj,fsproj}" are allowed.
// Unreadable entries are skipped.
func hasMatch(root, pattern string) bool {
	return walkUntil(root, func(path string, d fs.DirEntry) bool {
		ok, err := doublestar.Match(pattern, d.Name())
		return err == nil && ok
	})
}

// hasDirNamed reports whether a directory called name exists anywhere below root.
func hasDirNamed(root, name string) bool {
	return walkUntil(root, func(path string, d fs.DirEntry) bool {
		return d.IsDir() && d.Name() == name
	})
}

// walkUntil walks root in lexical order and returns true as soon as match
// accepts an entry. The root itself is never offered to match. A root that
// is a symlink to a directory is walked through the link.
func walkUntil(root string, match func(path string, d fs.DirEntry) bool) bool {
	root = RealRoot(root)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Keep walking past entries we cannot read.
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if match(path, d) {
			return errFound
		}
		return nil
	})
	return errors.Is(err, errFound)
}

// fileExists returns true if name exists directly in root and is a regular file.
func fileExists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// readFile reads a root file as text, dropping bytes that are not valid UTF-8.
// Returns an empty string if the file cannot be read.
func readFile(root, name string) string {
	data, err := os.ReadFile(filepath.Join(root, name))
	if err != nil {
		return ""
	}
	return strings.ToValidUTF8(string(data), "")
}

// fileContains reports whether the root file name contains sub, ignoring case.
// A missing or unreadable file never contains anything.
func fileContains(root, name, sub string) bool {
	if !fileExists(root, name) {
		return false
	}
	return strings.Contains(strings.ToLower(readFile(root, name)), strings.ToLower(sub))
}

// manifestDeclaresTool reports whether the root manifest exists and carries a
// [tool.<tool>] section.
func manifestDeclaresTool(root, manifest, tool string) bool {
	return fileExists(root, manifest) && fileContains(root, manifest, "[tool."+tool+"]")
}
