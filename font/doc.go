// The font subpackage loads .ttf and .otf fonts from paths, bytes or
// embedded filesystems, and provides a few helpers to query them (name,
// family, rune coverage).
//
// Glyph caches only need a single font at a single size, so this package
// doesn't try to manage collections of fonts.
package font
