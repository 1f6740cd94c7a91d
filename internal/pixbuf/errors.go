package pixbuf

import "fmt"

// ErrShapeMismatch matches any *ShapeMismatchError via errors.Is.
var ErrShapeMismatch = &ShapeMismatchError{}

// ShapeMismatchError reports two buffers that cannot be compared sample by sample.
type ShapeMismatchError struct {
	A, B Shape
}

func (e *ShapeMismatchError) Error() string {
	if e.A == (Shape{}) && e.B == (Shape{}) {
		return "image shapes differ"
	}
	return fmt.Sprintf("image shapes differ: %s vs %s", e.A, e.B)
}

func (e *ShapeMismatchError) Is(target error) bool {
	_, ok := target.(*ShapeMismatchError)
	return ok
}
