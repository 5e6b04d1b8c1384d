package cache

import "fmt"
import "errors"

var (
	ErrFontLoad      = errors.New("font load failed")
	ErrGlyphRaster   = errors.New("glyph rasterization failed")
	ErrGlyphNotFound = errors.New("glyph not found")
)

// Returned when a cache can't be built because the font can't be
// opened or parsed. Matches [ErrFontLoad] and the underlying
// cause (e.g. [io/fs.ErrNotExist]) with [errors.Is]().
type FontLoadError struct {
	Source string // font path, or "<bytes>"
	Err error
}

func (self *FontLoadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrFontLoad.Error(), self.Source, self.Err.Error())
}

func (self *FontLoadError) Unwrap() []error { return []error{ErrFontLoad, self.Err} }

// Returned when one of the repertoire runes can't be rasterized.
// The whole cache build is discarded. Matches [ErrGlyphRaster].
type RasterError struct {
	Rune rune
	Err error
}

func (self *RasterError) Error() string {
	return fmt.Sprintf("%s: %U: %s", ErrGlyphRaster.Error(), self.Rune, self.Err.Error())
}

func (self *RasterError) Unwrap() []error { return []error{ErrGlyphRaster, self.Err} }

// Returned when looking up a rune outside the repertoire, or any
// rune after the cache has been released. Matches [ErrGlyphNotFound].
type LookupError struct {
	Rune rune
}

func (self *LookupError) Error() string {
	return fmt.Sprintf("%s: %U", ErrGlyphNotFound.Error(), self.Rune)
}

func (self *LookupError) Unwrap() error { return ErrGlyphNotFound }
