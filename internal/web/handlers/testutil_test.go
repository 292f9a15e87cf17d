package handlers

import (
	"archive/zip"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/img2pdf/internal/config"
	"github.com/kozaktomas/img2pdf/internal/document"
	"github.com/kozaktomas/img2pdf/internal/layout"
)

// testHandler creates a convert handler with the default A4 geometry
func testHandler() *ConvertHandler {
	return NewConvertHandler(config.Load(), layout.DefaultPageSpec(), document.DefaultFont())
}

// encodePNG creates a small PNG image
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// zipOf packs the named blobs into a zip archive
func zipOf(t *testing.T, names []string, blobs [][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry: %v", err)
		}
		w.Write(blobs[i])
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// formFile is one file part of a multipart request
type formFile struct {
	field    string
	filename string
	data     []byte
}

// multipartRequest builds a POST request with the given fields and files
func multipartRequest(t *testing.T, path string, fields map[string]string, files []formFile) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write(f.data)
	}
	writer.Close()

	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
