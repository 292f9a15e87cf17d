package document

import "fmt"

// ConversionError reports an image that could not be turned into a page element.
// Index is the position of the image in its collection.
type ConversionError struct {
	Index int
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert element %d into a page: %v", e.Index, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// RenderError reports a failure to serialize the finished document.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render document: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// FontError reports a font resource that could not be loaded.
type FontError struct {
	Path string
	Err  error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("failed to load font %s: %v", e.Path, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
