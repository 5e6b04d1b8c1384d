//go:build !gtxt

package cache

import "image"

import "github.com/hajimehoshi/ebiten/v2"

// The image type glyphs are cached as. With Ebitengine, GPU images.
// Without Ebitengine (gtxt version), [*image.RGBA].
type GlyphImage = *ebiten.Image

// Based on Ebitengine internals.
const constImageSizeFactor = 192

// Returns an approximation of the size in bytes of a glyph image
// with the given dimensions. With Ebitengine the exact amount of
// helper fields is not known, so treat it as a lower bound.
func GlyphImageByteSize(width, height int) uint32 {
	return uint32(width*height)*4 + constImageSizeFactor
}

func newGlyphImage(bitmap *image.RGBA) GlyphImage {
	return ebiten.NewImageFromImage(bitmap)
}

func releaseGlyphImage(glyphImage GlyphImage) {
	glyphImage.Dispose()
}
