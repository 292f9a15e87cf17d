// Package source enumerates the images that make up one document, either from
// a folder on disk, a zip archive or memory.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/img2pdf/internal/imageset"
)

// Entry is a named image blob.
type Entry = imageset.Entry

// Kind identifies the source variant.
type Kind int

const (
	KindDirectory Kind = iota
	KindArchive
	KindMemory
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindArchive:
		return "archive"
	case KindMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Source yields the ordered entries of one future document.
type Source interface {
	// Name is the display name, used as document title and output file stem.
	Name() string
	Kind() Kind
	// Entries reads every image entry in page order.
	Entries() ([]Entry, error)
}

// ErrUnsupported is returned by Open for paths that are neither a folder nor a zip archive.
var ErrUnsupported = errors.New("unsupported source")

// PathError reports a source path that does not exist or has the wrong type.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid source %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// supportedExtensions lists the image types the decoder understands.
var supportedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// IsImageName reports whether name looks like a supported image. Hidden files
// and macOS resource fork folders are rejected.
func IsImageName(name string) bool {
	name = filepath.ToSlash(name)
	if strings.HasPrefix(name, "__MACOSX/") || strings.Contains(name, "/__MACOSX/") {
		return false
	}
	base := name[strings.LastIndex(name, "/")+1:]
	if strings.HasPrefix(base, ".") {
		return false
	}
	return supportedExtensions[strings.ToLower(filepath.Ext(base))]
}

func isArchiveName(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".zip")
}

// Open returns the source variant matching path.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	switch {
	case info.IsDir():
		return NewDirectory(path)
	case info.Mode().IsRegular() && isArchiveName(path):
		return NewArchive(path)
	default:
		return nil, &PathError{Path: path, Err: ErrUnsupported}
	}
}

// Discover lists the sources directly inside parent in name order. Hidden
// entries and anything that is neither a folder nor a zip archive are skipped.
func Discover(parent string) ([]Source, error) {
	dirEntries, err := os.ReadDir(parent)
	if err != nil {
		return nil, &PathError{Path: parent, Err: err}
	}

	var sources []Source
	for _, de := range dirEntries {
		if strings.HasPrefix(de.Name(), ".") || de.Name() == "__MACOSX" {
			continue
		}
		src, err := Open(filepath.Join(parent, de.Name()))
		if errors.Is(err, ErrUnsupported) {
			continue
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}
