package celltxt

import "fmt"
import "image"

var errNilImage = fmt.Errorf("%w: nil image", ErrSurfaceDraw)

// Empty rectangles are fine (nothing to draw), but Min must not
// be past Max.
func wellFormed(rect image.Rectangle) bool {
	return rect.Min.X <= rect.Max.X && rect.Min.Y <= rect.Max.Y
}

func invalidRectError(rect image.Rectangle) error {
	return fmt.Errorf("%w: malformed rectangle %v", ErrSurfaceDraw, rect)
}
