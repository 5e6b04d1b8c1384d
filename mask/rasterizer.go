package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. [DefaultRasterizer] wraps [golang.org/x/image/vector], but
// anyone can target this interface to plug a different algorithm into a
// [Face].
//
// Rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. Only the fractional
	// part of the origin is considered. The returned mask bounds are
	// relative to the integer part of the origin, so bounds.Min.Y is
	// typically negative for glyphs that ascend above the baseline.
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)
}

type vectorTracer interface {
	MoveTo(fixed.Point26_6)
	LineTo(fixed.Point26_6)
	QuadTo(control, target fixed.Point26_6)
	CubeTo(controlA, controlB, target fixed.Point26_6)
}

// A low level method to rasterize glyph masks. Same as calling
// rasterizer.Rasterize(outline, dot), except that outlines without
// any lines or curves (e.g. spaces) return a nil mask and no error.
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil
}

// Calls the tracer methods for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
