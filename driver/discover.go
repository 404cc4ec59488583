package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Ext is the source file extension.
const Ext = ".jack"

var (
	ErrNotJackFile = errors.New("not a " + Ext + " file")
	ErrNoSources   = errors.New("no " + Ext + " files")
)

// Discover returns the sources named by path: the file itself, or every
// .jack file directly inside a directory, sorted by name.
func Discover(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if filepath.Ext(path) != Ext {
			return nil, fmt.Errorf("%s: %w", path, ErrNotJackFile)
		}
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), Ext) {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSources)
	}
	slices.Sort(files)
	return files, nil
}

// outputPath returns the path of an output derived from src. suffix replaces
// the .jack extension; dir, when set, replaces the source directory.
func outputPath(src, dir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(src), Ext) + suffix
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base)
}
