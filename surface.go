package celltxt

import "image"
import "image/color"

// A Surface is the part of a display host that the [Compositor]
// draws onto. Clearing and presenting frames is up to the host.
//
// Two implementations are provided: [EbitenSurface] (default) and
// [ImageSurface] (gtxt build tag). Errors should match [ErrSurfaceDraw].
type Surface interface {
	// Fills the given rectangle with a solid color.
	FillRect(rect image.Rectangle, fill color.Color) error

	// Draws the image scaled to fill the given rectangle exactly (the
	// aspect ratio is not preserved) with its colors multiplied by the
	// tint. The image itself must not be modified.
	DrawImage(img GlyphImage, rect image.Rectangle, tint color.Color) error
}
