// Package output persists finished documents.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kozaktomas/img2pdf/internal/constants"
)

// Sink stores a finished byte stream under a name.
type Sink interface {
	Write(path string, data []byte) error
}

// PersistError reports a failure to store a document.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// FileSink writes documents to the local file system. Each write goes to a
// temporary file in the target directory which is then renamed into place,
// so readers never observe a partial document.
type FileSink struct {
	// Perm is the mode of created files. Zero means 0644.
	Perm os.FileMode
}

// Write stores data at path, creating the parent directory if needed.
func (s FileSink) Write(path string, data []byte) error {
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &PersistError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &PersistError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &PersistError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &PersistError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &PersistError{Path: path, Err: err}
	}
	return nil
}

// FileName turns a document name into a safe file name with the PDF
// extension. Path separators and control characters are replaced.
func FileName(name string) string {
	t := transform.Chain(norm.NFC, runes.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}))
	clean, _, _ := transform.String(t, name)
	clean = strings.TrimSpace(clean)
	if clean == "" || clean == "." || clean == ".." {
		clean = constants.DefaultDocumentName
	}
	return clean + constants.OutputExtension
}

// PathFor returns the output path of the document named name inside dir.
func PathFor(dir, name string) string {
	return filepath.Join(dir, FileName(name))
}
