package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/oden/pkg"
)

// baseConfig is the base name of the YAML configuration file.
const baseConfig = "config"

var defaultDirMode os.FileMode = 0o700

// basePrefix is the name of the per-user configuration and cache
// directories. It is the base name of the executable, except that the
// default dlv build output maps to [pkg.Name] and leading dots are removed.
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))

		id = regexp.MustCompile(`^__debug_bin\d+$`).ReplaceAllString(id, pkg.Name)
		id = strings.TrimLeft(id, ".")

		if id == "" {
			return pkg.Name
		}

		return id
	},
)

// userDir joins [basePrefix] onto the directory returned by locate. If that
// fails, the hidden directory under the home directory is used, and then
// the working directory.
func userDir(locate func() (string, error), hidden string) string {
	dir, err := locate()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, hidden)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir is where the configuration files live.
func configDir() string { return userDir(os.UserConfigDir, ".config") }

// cacheDir holds REPL history and profiles.
func cacheDir() string { return userDir(os.UserCacheDir, ".cache") }

// configPath joins elem onto [configDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		if err := os.MkdirAll(dir, defaultDirMode); err != nil {
			return err
		}
	}

	return nil
}
