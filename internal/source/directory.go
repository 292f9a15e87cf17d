package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Directory reads the images directly inside a folder.
type Directory struct {
	path string
	name string
}

// NewDirectory validates that path is an existing folder.
func NewDirectory(path string) (*Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &PathError{Path: path, Err: errors.New("not a directory")}
	}
	return &Directory{path: path, name: normalizeName(filepath.Base(filepath.Clean(path)))}, nil
}

func (d *Directory) Name() string { return d.name }

func (d *Directory) Kind() Kind { return KindDirectory }

// Path returns the folder path.
func (d *Directory) Path() string { return d.path }

// Entries reads every regular image file in the folder (non-recursive).
func (d *Directory) Entries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("cannot read folder %s: %w", d.path, err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() || !IsImageName(de.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(d.path, de.Name()))
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", de.Name(), err)
		}
		entries = append(entries, Entry{Name: de.Name(), Data: data})
	}

	SortEntries(entries)
	return entries, nil
}
