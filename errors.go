package celltxt

import "fmt"
import "errors"

import "github.com/tinne26/celltxt/cache"

var (
	// Same as [cache.ErrFontLoad].
	ErrFontLoad = cache.ErrFontLoad
	// Same as [cache.ErrGlyphRaster].
	ErrGlyphRaster = cache.ErrGlyphRaster
	// Same as [cache.ErrGlyphNotFound].
	ErrGlyphNotFound = cache.ErrGlyphNotFound

	// Returned when a surface can't fill or draw into a rectangle.
	ErrSurfaceDraw = errors.New("surface draw failed")
	// Returned when drawing non-empty text with a cell height <= 0.
	ErrInvalidCellHeight = errors.New("cell height must be positive")
)

// Returned by text drawing operations. Reports the rune that failed
// and its position (in runes, not bytes) within the text. Glyphs
// before it remain drawn on the surface.
type DrawError struct {
	Rune rune
	Index int
	Err error
}

func (self *DrawError) Error() string {
	return fmt.Sprintf("can't draw %U at index %d: %s", self.Rune, self.Index, self.Err.Error())
}

func (self *DrawError) Unwrap() error { return self.Err }

// Ensures errors coming from a surface match ErrSurfaceDraw.
func asSurfaceError(err error) error {
	if err == nil || errors.Is(err, ErrSurfaceDraw) { return err }
	return fmt.Errorf("%w: %w", ErrSurfaceDraw, err)
}
