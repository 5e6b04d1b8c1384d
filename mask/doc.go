// The mask subpackage turns font glyphs into raster images.
//
// It has two layers. A [Rasterizer] converts a glyph outline (lines and
// curves extracted from the font) into an alpha coverage mask. A [Face]
// binds a parsed font to a single pixel size and uses a rasterizer to
// render whole glyph cells: bitmaps as wide as the glyph advance and as
// tall as the font line, colored with a tint and ready to be uploaded
// into a glyph cache.
//
// Neither rasterizers nor faces can be used concurrently.
package mask
