package imageset

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned when a collection is built from no blobs.
var ErrEmptyCollection = errors.New("image collection is empty")

// NotAnImageError reports the first input blob that could not be decoded.
// Index is the position in the original input list.
type NotAnImageError struct {
	Index int
	Err   error
}

func (e *NotAnImageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("element %d is not an image", e.Index)
	}
	return fmt.Sprintf("element %d is not an image: %v", e.Index, e.Err)
}

func (e *NotAnImageError) Unwrap() error {
	return e.Err
}
