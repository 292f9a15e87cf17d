package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/kozaktomas/img2pdf/internal/constants"
	"github.com/kozaktomas/img2pdf/internal/source"
)

// errBadUpload marks client errors in the uploaded form.
var errBadUpload = errors.New("bad upload")

// errUploadTooLarge marks request bodies over the upload limit.
var errUploadTooLarge = errors.New("upload too large")

// upload is the parsed input of a conversion request.
type upload struct {
	name    string
	entries []source.Entry
}

// readFile reads one multipart file into memory.
func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %s", fileHeader.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %s", fileHeader.Filename)
	}
	return data, nil
}

// readUpload parses either one "archive" zip or one or more "files" images.
// Files keep their upload order; archive entries are sorted by name.
// The body is limited to maxUpload bytes.
func readUpload(w http.ResponseWriter, r *http.Request, maxUpload int64) (*upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	if err := r.ParseMultipartForm(constants.MaxMemoryUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", errUploadTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: failed to parse multipart form", errBadUpload)
	}

	archives := r.MultipartForm.File["archive"]
	files := r.MultipartForm.File["files"]

	switch {
	case len(archives) > 0 && len(files) > 0:
		return nil, fmt.Errorf("%w: send either an archive or files, not both", errBadUpload)
	case len(archives) > 1:
		return nil, fmt.Errorf("%w: only one archive is accepted", errBadUpload)
	case len(archives) == 1:
		return readArchiveUpload(r, archives[0])
	case len(files) > 0:
		return readFilesUpload(r, files)
	default:
		return nil, fmt.Errorf("%w: no files provided", errBadUpload)
	}
}

func readArchiveUpload(r *http.Request, fileHeader *multipart.FileHeader) (*upload, error) {
	data, err := readFile(fileHeader)
	if err != nil {
		return nil, err
	}
	entries, err := source.ReadArchive(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadUpload, err)
	}

	base := filepath.Base(fileHeader.Filename)
	return &upload{
		name:    uploadName(r, strings.TrimSuffix(base, filepath.Ext(base))),
		entries: entries,
	}, nil
}

func readFilesUpload(r *http.Request, files []*multipart.FileHeader) (*upload, error) {
	entries := make([]source.Entry, 0, len(files))
	for _, fileHeader := range files {
		data, err := readFile(fileHeader)
		if err != nil {
			return nil, err
		}
		entries = append(entries, source.Entry{Name: filepath.Base(fileHeader.Filename), Data: data})
	}
	return &upload{name: uploadName(r, ""), entries: entries}, nil
}

// uploadName prefers the "name" form field, then fallback, then the default.
func uploadName(r *http.Request, fallback string) string {
	if name := strings.TrimSpace(r.FormValue("name")); name != "" {
		return name
	}
	if fallback != "" {
		return fallback
	}
	return constants.DefaultDocumentName
}
