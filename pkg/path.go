package pkg

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/mung"
)

// SearchPathEnv names the environment variable holding the list of
// directories searched for source files that are not found directly.
const SearchPathEnv = "ODEN_PATH"

// SearchPath returns the directories searched for source files.
//
// The include directories take precedence and are prefixed onto the list
// held by [SearchPathEnv]. Duplicate and empty entries are removed.
func SearchPath(include ...string) []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(SearchPathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(include...),
		mung.WithFilter(func(s string) bool { return strings.TrimSpace(s) != "" }),
	).String()

	if list == "" {
		return nil
	}

	var dirs []string

	for _, dir := range filepath.SplitList(list) {
		if !slices.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// Resolve returns the path to the named source file.
//
// Absolute names and names that exist relative to the working directory are
// returned unchanged. Otherwise each directory in dirs is tried in order, and
// then again with [Extension] appended when name has no extension.
// If no candidate exists, name is returned with [fs.ErrNotExist].
func Resolve(name string, dirs ...string) (string, error) {
	if name == "" || name == "-" {
		return name, nil
	}

	if exists(name) {
		return name, nil
	}

	if filepath.IsAbs(name) {
		return name, fs.ErrNotExist
	}

	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = append(candidates, name+Extension)
	}

	for _, dir := range dirs {
		for _, c := range candidates {
			if p := filepath.Join(dir, c); exists(p) {
				return p, nil
			}
		}
	}

	return name, fs.ErrNotExist
}

func exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
