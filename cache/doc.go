// The cache subpackage pre-rasterizes a fixed character repertoire into
// glyph images and keeps them for the lifetime of a [GlyphCache].
//
// The repertoire is closed: printable ASCII (U+0020 to U+007F) and the
// block elements (U+2580 to U+259F), 128 runes in total. A cache is built
// once for a font, a point size and a tint, all or nothing, and never
// changes afterwards. There's no eviction and no lazy rasterization,
// which keeps drawing free of surprises: a lookup either returns an image
// that was created at load time or fails with [ErrGlyphNotFound].
//
// Rasterizing at a big point size (see [mask.DefaultPointSize]) and
// scaling down at draw time is the intended usage. Images are white by
// default so they can be recolored by multiplication when drawn.
//
// Memory usage is small but not negligible: at 128px per em, a monospace
// font gives cells of roughly 77x150 pixels, which is about 45KiB per
// glyph and ~7MiB for the whole repertoire. [GlyphCache.ByteSize]()
// reports the approximate value for the current cache.
package cache
