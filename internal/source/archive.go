package source

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/img2pdf/internal/constants"
)

// ErrEntryTooLarge is returned for archive entries above constants.MaxEntrySize.
var ErrEntryTooLarge = errors.New("archive entry too large")

// Archive reads the images stored in a zip file.
type Archive struct {
	path string
	name string
}

// NewArchive validates that path is an existing regular .zip file.
func NewArchive(path string) (*Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &PathError{Path: path, Err: errors.New("not a regular file")}
	}
	if !isArchiveName(path) {
		return nil, &PathError{Path: path, Err: ErrUnsupported}
	}
	base := filepath.Base(path)
	return &Archive{path: path, name: normalizeName(strings.TrimSuffix(base, filepath.Ext(base)))}, nil
}

func (a *Archive) Name() string { return a.name }

func (a *Archive) Kind() Kind { return KindArchive }

// Path returns the archive path.
func (a *Archive) Path() string { return a.path }

// Entries reads every image entry of the archive, nested folders included.
func (a *Archive) Entries() ([]Entry, error) {
	r, err := zip.OpenReader(a.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open archive %s: %w", a.path, err)
	}
	defer r.Close()

	return readZip(&r.Reader)
}

// ReadArchive reads the image entries of an in-memory zip archive.
func ReadArchive(r io.ReaderAt, size int64) ([]Entry, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("cannot read archive: %w", err)
	}
	return readZip(zr)
}

func readZip(zr *zip.Reader) ([]Entry, error) {
	var entries []Entry
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !IsImageName(f.Name) {
			continue
		}
		if f.UncompressedSize64 > constants.MaxEntrySize {
			return nil, fmt.Errorf("%s: %w", f.Name, ErrEntryTooLarge)
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", f.Name, err)
		}
		entries = append(entries, Entry{Name: f.Name, Data: data})
	}

	SortEntries(entries)
	return entries, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// The declared size can lie; never read past the limit.
	data, err := io.ReadAll(io.LimitReader(rc, constants.MaxEntrySize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > constants.MaxEntrySize {
		return nil, ErrEntryTooLarge
	}
	return data, nil
}
