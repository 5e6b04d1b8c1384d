//go:build gtxt

package cache

import "image"

type GlyphImage = *image.RGBA

const constImageSizeFactor = 56

func GlyphImageByteSize(width, height int) uint32 {
	return uint32(width*height)*4 + constImageSizeFactor
}

// gtxt uses the rasterized bitmap directly
func newGlyphImage(bitmap *image.RGBA) GlyphImage { return bitmap }

func releaseGlyphImage(GlyphImage) {}
