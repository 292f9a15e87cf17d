// Package imageset validates batches of raw image blobs and turns them into
// immutable, ordered collections.
package imageset

// Record is one validated input image.
type Record struct {
	Index  int
	Name   string // entry name, may be empty
	Format string
	Width  int
	Height int

	data []byte
}

// Data returns the raw bytes of the image. The slice must not be modified.
func (r Record) Data() []byte {
	return r.data
}

// Entry is a named raw blob as supplied by a source.
type Entry struct {
	Name string
	Data []byte
}

// Collection is a named, ordered, non-empty sequence of records.
// It is immutable once constructed.
type Collection struct {
	name      string
	records   []Record
	maxWidth  int
	maxHeight int
}

// New validates blobs and builds a collection named name.
func New(blobs [][]byte, name string) (*Collection, error) {
	entries := make([]Entry, len(blobs))
	for i, b := range blobs {
		entries[i] = Entry{Data: b}
	}
	return NewFromEntries(entries, name)
}

// NewFromEntries validates named blobs and builds a collection. The first
// entry that does not decode aborts construction with a *NotAnImageError.
func NewFromEntries(entries []Entry, name string) (*Collection, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCollection
	}

	records := make([]Record, 0, len(entries))
	var maxWidth, maxHeight int
	for i, e := range entries {
		w, h, format, err := Dimensions(e.Data)
		if err != nil {
			return nil, &NotAnImageError{Index: i, Err: err}
		}
		maxWidth = max(maxWidth, w)
		maxHeight = max(maxHeight, h)
		records = append(records, Record{
			Index:  i,
			Name:   e.Name,
			Format: format,
			Width:  w,
			Height: h,
			data:   e.Data,
		})
	}

	return &Collection{
		name:      name,
		records:   records,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}, nil
}

// Name returns the display name used as document title and output file stem.
func (c *Collection) Name() string { return c.name }

// Len returns the number of records.
func (c *Collection) Len() int { return len(c.records) }

// Records returns a copy of the records in page order.
func (c *Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Record returns the i-th record.
func (c *Collection) Record(i int) Record { return c.records[i] }

// MaxWidth returns the largest pixel width over all records.
func (c *Collection) MaxWidth() int { return c.maxWidth }

// MaxHeight returns the largest pixel height over all records.
func (c *Collection) MaxHeight() int { return c.maxHeight }

// Dimensions returns (MaxWidth, MaxHeight), the bounding box of the set.
func (c *Collection) Dimensions() (int, int) { return c.maxWidth, c.maxHeight }
