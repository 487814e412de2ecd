package taskfile

import (
	"fmt"
	"os"
	"path/filepath"

	"taskmenu/internal/model"
)

// Names lists the accepted Taskfile names in order of importance.
var Names = []string{
	"Taskfile.yml",
	"taskfile.yml",
	"Taskfile.yaml",
	"taskfile.yaml",
	"Taskfile.dist.yml",
	"taskfile.dist.yml",
	"Taskfile.dist.yaml",
	"taskfile.dist.yaml",
}

// homeDir is swapped in tests.
var homeDir = os.UserHomeDir

// Dir returns the directory searched for a Taskfile: the working directory,
// or the user's home directory when global is set.
func Dir(global bool) (string, error) {
	if !global {
		return ".", nil
	}
	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHomeDirUnavailable, err)
	}
	if home == "" {
		return "", ErrHomeDirUnavailable
	}
	return home, nil
}

// Locate returns the first regular file in dir matching one of names.
func Locate(dir string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// Open locates and loads the Taskfile for the local or global directory.
func Open(global bool) (model.Taskfile, error) {
	dir, err := Dir(global)
	if err != nil {
		return model.Taskfile{}, err
	}
	path, err := Locate(dir, Names)
	if err != nil {
		return model.Taskfile{}, err
	}
	return Load(path)
}
