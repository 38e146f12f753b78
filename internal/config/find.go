package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultFileName is the configuration file looked up when no path is provided.
const DefaultFileName = "catalog.yaml"

// ErrFileNotFound is returned by [FindFile] when no directory up the tree contains the file.
var ErrFileNotFound = errors.New("config file not found in directory tree")

// FindFile returns the absolute path of the named file, searching the current
// directory and its parents. Directories with the same name are skipped.
func FindFile(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current working directory")
	}
	dir = filepath.Clean(dir)
	for {
		path := filepath.Join(dir, name)
		fi, err := os.Stat(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return "", errors.Wrapf(err, "failed to stat %s", path)
			}
		} else if !fi.IsDir() {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", errors.Wrap(ErrFileNotFound, name)
}
