package celltxt

import "image/color"

import "github.com/tinne26/celltxt/mask"
import "github.com/tinne26/celltxt/cache"

// Same as [cache.GlyphCache].
type GlyphCache = cache.GlyphCache

// Same as [cache.GlyphImage]. With Ebitengine, *ebiten.Image.
// Without Ebitengine (gtxt version), [*image.RGBA].
type GlyphImage = cache.GlyphImage

// Builds a white glyph cache at [mask.DefaultPointSize] from the
// font at the given path. For other sizes or tints, use [cache.Build]().
func LoadCache(fontPath string) (*GlyphCache, error) {
	return cache.Build(fontPath, mask.DefaultPointSize, color.White)
}
