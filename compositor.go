package celltxt

import "image"
import "image/color"

// The Compositor draws cached glyphs onto surfaces. It doesn't hold any
// per-draw state: colors and positions are passed on each call and the
// glyph images are never modified, so a single compositor can be shared
// by any number of draw calls, as long as the surfaces allow it.
type Compositor struct {
	glyphs *GlyphCache
}

// Creates a new compositor for the given glyph cache. Panics if
// the cache is nil.
func NewCompositor(glyphs *GlyphCache) *Compositor {
	if glyphs == nil { panic("nil glyph cache") }
	return &Compositor{ glyphs: glyphs }
}

// Returns the compositor's glyph cache.
func (self *Compositor) Cache() *GlyphCache { return self.glyphs }

// Fills the given rectangle with the background color and draws the
// glyph for the given rune on top, scaled to fill the rectangle
// exactly and tinted with the given color.
//
// Errors match [ErrGlyphNotFound] if the rune is not cached, or
// [ErrSurfaceDraw] if the surface fails. Nothing is drawn when
// the lookup fails.
func (self *Compositor) DrawGlyph(target Surface, codePoint rune, fg, bg color.Color, rect image.Rectangle) error {
	glyphImage, err := self.glyphs.Lookup(codePoint)
	if err != nil { return err }
	err = target.FillRect(rect, bg)
	if err != nil { return asSurfaceError(err) }
	return asSurfaceError(target.DrawImage(glyphImage, rect, fg))
}

// Draws the given text in a single line starting at the given origin
// (top-left corner of the first cell). Each glyph is scaled to exactly
// cellHeight pixels tall, with its width scaled proportionally (see
// [ScaledWidth]()), and glyphs are placed one after another without
// gaps. Each cell is filled with the background color before drawing
// the glyph with the foreground color.
//
// Drawing stops at the first failure, returning a [*DrawError]. Glyphs
// drawn before the failure remain on the surface. Empty text draws
// nothing and never fails.
func (self *Compositor) DrawText(target Surface, text string, fg, bg color.Color, origin image.Point, cellHeight int) error {
	return self.draw(target, &strIterator{ text: text }, fg, bg, origin, cellHeight)
}

// Same as [Compositor.DrawText](), but for a sequence of runes.
func (self *Compositor) DrawRunes(target Surface, runes []rune, fg, bg color.Color, origin image.Point, cellHeight int) error {
	return self.draw(target, &runesIterator{ runes: runes }, fg, bg, origin, cellHeight)
}

// Returns the width that [Compositor.DrawText]() would advance when
// drawing the given text at the given cell height.
func (self *Compositor) MeasureText(text string, cellHeight int) (int, error) {
	width := 0
	err := self.traverse(&strIterator{ text: text }, cellHeight,
		func(_ rune, rect image.Rectangle) error {
			width = rect.Max.X
			return nil
		})
	return width, err
}

// Computes the width of a glyph scaled to the given cell height, as
// round(glyphWidth*cellHeight/glyphHeight), rounding half up. The
// computation is done in a single integer step, so it doesn't lose
// precision or degenerate when scaling glyphs up.
func ScaledWidth(glyphWidth, glyphHeight, cellHeight int) int {
	if glyphHeight <= 0 || glyphWidth <= 0 || cellHeight <= 0 { return 0 }
	num := int64(glyphWidth)*int64(cellHeight)
	den := int64(glyphHeight)
	return int((2*num + den)/(2*den))
}

// ---- underlying implementations ----

func (self *Compositor) draw(target Surface, iter runeIterator, fg, bg color.Color, origin image.Point, cellHeight int) error {
	return self.traverse(iter, cellHeight,
		func(codePoint rune, rect image.Rectangle) error {
			return self.DrawGlyph(target, codePoint, fg, bg, rect.Add(origin))
		})
}

// Computes the destination rectangle of each glyph relative to (0, 0)
// and passes it to the given function, stopping at the first error.
func (self *Compositor) traverse(iter runeIterator, cellHeight int, fn func(rune, image.Rectangle) error) error {
	x := 0
	for index := 0; ; index++ {
		codePoint := iter.Next()
		if codePoint == -1 { return nil }
		if cellHeight <= 0 {
			return &DrawError{ Rune: codePoint, Index: index, Err: ErrInvalidCellHeight }
		}

		width, height, err := self.glyphs.Size(codePoint)
		if err != nil { return &DrawError{ Rune: codePoint, Index: index, Err: err } }
		scaledWidth := ScaledWidth(width, height, cellHeight)
		rect := image.Rect(x, 0, x + scaledWidth, cellHeight)
		err = fn(codePoint, rect)
		if err != nil { return &DrawError{ Rune: codePoint, Index: index, Err: err } }
		x += scaledWidth
	}
}
