// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"errors"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk, the file argument is the archive entry under requested prefix. If an
// error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk visits all regular files in the archive located under prefix in
// archive order. Prefix is a path inside archive: either a directory, which
// selects everything below it, or a single file. Empty prefix selects
// everything. Entries with absolute paths or ".." components are skipped and
// reported through skipped.
func Walk(archive, prefix string, walkFn WalkFunc) (skipped []string, err error) {
	r, err := zip.OpenReader(archive)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, err
	}
	defer r.Close()

	prefix = strings.Trim(strings.ReplaceAll(prefix, `\`, "/"), "/")
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.FileHeader.Name
		if !isSafePath(name) {
			skipped = append(skipped, name)
			continue
		}
		if !underPrefix(name, prefix) {
			continue
		}
		if err := walkFn(archive, f); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}

func underPrefix(name, prefix string) bool {
	if len(prefix) == 0 || name == prefix {
		return true
	}
	return strings.HasPrefix(name, prefix+"/")
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || (len(name) > 1 && name[1] == ':') {
		return false
	}
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '/' || r == '\\' }) {
		if part == ".." {
			return false
		}
	}
	return true
}
