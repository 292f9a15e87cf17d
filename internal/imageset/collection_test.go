package imageset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/bmp"
)

func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		for y := range height {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, createTestImage(width, height, color.Gray{Y: 128})); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestNew_Empty(t *testing.T) {
	for _, name := range []string{"", "empty_data", "アルバム"} {
		t.Run(name, func(t *testing.T) {
			coll, err := New(nil, name)
			if !errors.Is(err, ErrEmptyCollection) {
				t.Fatalf("expected ErrEmptyCollection, got %v", err)
			}
			if coll != nil {
				t.Error("expected nil collection")
			}

			_, err = New([][]byte{}, name)
			if !errors.Is(err, ErrEmptyCollection) {
				t.Fatalf("expected ErrEmptyCollection for empty slice, got %v", err)
			}
		})
	}
}

func TestNew_NotAnImageReportsIndex(t *testing.T) {
	const n = 4
	for k := range n {
		blobs := make([][]byte, n)
		for i := range n {
			blobs[i] = encodePNG(t, 3+i, 5)
		}
		blobs[k] = []byte("this is not an image")

		_, err := New(blobs, "broken")
		var nai *NotAnImageError
		if !errors.As(err, &nai) {
			t.Fatalf("k=%d: expected *NotAnImageError, got %v", k, err)
		}
		if nai.Index != k {
			t.Errorf("k=%d: got index %d", k, nai.Index)
		}
		if nai.Err == nil {
			t.Errorf("k=%d: expected underlying decode error", k)
		}
	}
}

func TestNew_FirstFailureWins(t *testing.T) {
	blobs := [][]byte{encodePNG(t, 2, 2), []byte("bad"), []byte("also bad")}
	_, err := New(blobs, "two_bad")
	var nai *NotAnImageError
	if !errors.As(err, &nai) || nai.Index != 1 {
		t.Fatalf("expected NotAnImage at index 1, got %v", err)
	}
}

func TestNew_SameDimensions(t *testing.T) {
	coll, err := New([][]byte{encodePNG(t, 10, 20), encodePNG(t, 10, 20)}, "correct_data")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if coll.Len() != 2 {
		t.Errorf("expected 2 records, got %d", coll.Len())
	}
	if w, h := coll.Dimensions(); w != 10 || h != 20 {
		t.Errorf("Dimensions() = (%d, %d); want (10, 20)", w, h)
	}
	if coll.Name() != "correct_data" {
		t.Errorf("Name() = %q", coll.Name())
	}
}

func TestNew_MaxDimensionsFromVariedSizes(t *testing.T) {
	blobs := [][]byte{
		encodePNG(t, 100, 50), // widest
		encodePNG(t, 80, 200), // tallest
		encodePNG(t, 30, 30),
	}
	coll, err := New(blobs, "varied_sizes")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if coll.MaxWidth() != 100 {
		t.Errorf("MaxWidth() = %d; want 100", coll.MaxWidth())
	}
	if coll.MaxHeight() != 200 {
		t.Errorf("MaxHeight() = %d; want 200", coll.MaxHeight())
	}
	for i, r := range coll.Records() {
		if r.Index != i {
			t.Errorf("record %d has index %d", i, r.Index)
		}
		if !bytes.Equal(r.Data(), blobs[i]) {
			t.Errorf("record %d data differs from input", i)
		}
	}
}

func TestNew_SingleImage(t *testing.T) {
	coll, err := New([][]byte{encodePNG(t, 123, 456)}, "single_image")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if coll.MaxWidth() != 123 || coll.MaxHeight() != 456 {
		t.Errorf("got %dx%d; want 123x456", coll.MaxWidth(), coll.MaxHeight())
	}
}

func TestNew_Formats(t *testing.T) {
	src := createTestImage(7, 9, color.RGBA{200, 10, 10, 255})

	var jpg, gf, bm bytes.Buffer
	if err := jpeg.Encode(&jpg, src, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("jpeg: %v", err)
	}
	if err := gif.Encode(&gf, src, nil); err != nil {
		t.Fatalf("gif: %v", err)
	}
	if err := bmp.Encode(&bm, src); err != nil {
		t.Fatalf("bmp: %v", err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", encodePNG(t, 7, 9), "png"},
		{"jpeg", jpg.Bytes(), "jpeg"},
		{"gif", gf.Bytes(), "gif"},
		{"bmp", bm.Bytes(), "bmp"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coll, err := NewFromEntries([]Entry{{Name: "a." + tc.name, Data: tc.data}}, tc.name)
			if err != nil {
				t.Fatalf("NewFromEntries failed: %v", err)
			}
			r := coll.Record(0)
			if r.Format != tc.format {
				t.Errorf("Format = %q; want %q", r.Format, tc.format)
			}
			if r.Width != 7 || r.Height != 9 {
				t.Errorf("size = %dx%d; want 7x9", r.Width, r.Height)
			}
			if r.Name != "a."+tc.name {
				t.Errorf("Name = %q", r.Name)
			}
		})
	}
}

func TestNew_Deterministic(t *testing.T) {
	blobs := [][]byte{encodePNG(t, 4, 8), encodePNG(t, 16, 2), encodePNG(t, 9, 9)}

	a, err := New(blobs, "same")
	if err != nil {
		t.Fatalf("first New failed: %v", err)
	}
	b, err := New(blobs, "same")
	if err != nil {
		t.Fatalf("second New failed: %v", err)
	}

	if diff := cmp.Diff(a.Records(), b.Records(), cmp.AllowUnexported(Record{})); diff != "" {
		t.Errorf("records differ (-first +second):\n%s", diff)
	}
	if a.MaxWidth() != b.MaxWidth() || a.MaxHeight() != b.MaxHeight() {
		t.Error("aggregates differ between runs")
	}
}

func TestRecords_ReturnsCopy(t *testing.T) {
	coll, err := New([][]byte{encodePNG(t, 1, 1)}, "copy")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	recs := coll.Records()
	recs[0].Width = 999
	if coll.Record(0).Width != 1 {
		t.Error("modifying Records() result changed the collection")
	}
}

func TestNotAnImageError_Message(t *testing.T) {
	withCause := &NotAnImageError{Index: 3, Err: errors.New("boom")}
	if got := withCause.Error(); got != "element 3 is not an image: boom" {
		t.Errorf("Error() = %q", got)
	}
	indexOnly := &NotAnImageError{Index: 0}
	if got := indexOnly.Error(); got != "element 0 is not an image" {
		t.Errorf("Error() = %q", got)
	}
}

// pngHeader returns a PNG that holds only a signature and an IHDR chunk
// declaring an RGB image of the given size.
func pngHeader(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := make([]byte, 0, 17)
	chunk = append(chunk, "IHDR"...)
	chunk = binary.BigEndian.AppendUint32(chunk, width)
	chunk = binary.BigEndian.AppendUint32(chunk, height)
	chunk = append(chunk, 8, 2, 0, 0, 0) // 8-bit RGB, no interlace

	binary.Write(&buf, binary.BigEndian, uint32(len(chunk)-4))
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDimensions_PixelLimit(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint32
		tooLarge      bool
	}{
		{"at the limit", 16384, 16384, false},
		{"one column over", 16385, 16384, true},
		{"huge square", 60000, 60000, true},
		{"extreme strip", 1, 1 << 30, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, h, format, err := Dimensions(pngHeader(tc.width, tc.height))
			if tc.tooLarge {
				if !errors.Is(err, ErrTooManyPixels) {
					t.Fatalf("expected ErrTooManyPixels, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Dimensions failed: %v", err)
			}
			if w != int(tc.width) || h != int(tc.height) || format != "png" {
				t.Errorf("got %dx%d %s", w, h, format)
			}
		})
	}
}

func TestNew_OversizedImageIsNotAnImage(t *testing.T) {
	blobs := [][]byte{encodePNG(t, 4, 4), pngHeader(60000, 60000)}

	_, err := New(blobs, "bomb")

	var notImage *NotAnImageError
	if !errors.As(err, &notImage) || notImage.Index != 1 {
		t.Fatalf("expected NotAnImageError at index 1, got %v", err)
	}
	if !errors.Is(err, ErrTooManyPixels) {
		t.Errorf("expected ErrTooManyPixels in the chain, got %v", err)
	}
}

func TestDecode_RejectsOversizedBeforeDecoding(t *testing.T) {
	if _, _, err := Decode(pngHeader(60000, 60000)); !errors.Is(err, ErrTooManyPixels) {
		t.Errorf("expected ErrTooManyPixels, got %v", err)
	}
}
