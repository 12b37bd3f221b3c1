package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/calltrace/pkg"
)

const (
	// baseConfig is the base name of the flag defaults file. The extension
	// selects the format.
	baseConfig = "config"

	// baseAttach is the file name of the attachment document loaded by
	// default when --attach is not given.
	baseAttach = "attach.yaml"
)

// defaultDirMode is the permission mode for created directories.
const defaultDirMode os.FileMode = 0o700

// appDirName names the per-user directories holding flag defaults, the
// attachment document and profiles. It is the executable's base name, so a
// renamed binary keeps separate attachments. Builds from the dlv debugger
// use [pkg.Name] instead, and leading dots are removed.
var appDirName = sync.OnceValue(
	func() string {
		name := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			name = exe
		}

		name = filepath.Base(name)
		name = strings.TrimSuffix(name, filepath.Ext(name))

		for rex, rep := range map[*regexp.Regexp]string{
			regexp.MustCompile(`^__debug_bin\d+$`): pkg.Name,
			regexp.MustCompile(`^\.+`):             "",
		} {
			name = rex.ReplaceAllString(name, rep)
		}

		return name
	},
)

// userDir returns [appDirName] inside the directory reported by base, or
// inside $HOME/hidden when base fails, or the working directory as a last
// resort.
func userDir(base func() (string, error), hidden string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, hidden)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, appDirName())
}

// configDir holds the flag defaults and the default attachment document.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// cacheDir holds profiles written with --pprof-mode.
var cacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

// configPath joins elem onto [configDir].
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}

// mkdirAllRequired creates the configuration and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{configDir(), cacheDir()} {
		err := os.MkdirAll(dir, defaultDirMode)
		if err != nil {
			return err
		}
	}

	return nil
}
