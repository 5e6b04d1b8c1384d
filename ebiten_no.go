//go:build gtxt

package celltxt

import "image"
import "image/color"

import "golang.org/x/image/draw"

var _ Surface = (*ImageSurface)(nil)

// A [Surface] that draws on any [draw.Image] on the CPU. Only available
// with the gtxt build tag. Mostly useful for tests, tools and headless
// rendering; it's far too slow for real-time use at big sizes.
type ImageSurface struct {
	target draw.Image
	scaler draw.Scaler
}

// Creates a surface for the given target. Glyphs are scaled with
// [draw.BiLinear] by default (see [ImageSurface.SetScaler]()).
func NewImageSurface(target draw.Image) *ImageSurface {
	if target == nil { panic("nil target") }
	return &ImageSurface{ target: target, scaler: draw.BiLinear }
}

// Sets the scaler used to resize glyphs. Nil scalers are not allowed.
func (self *ImageSurface) SetScaler(scaler draw.Scaler) {
	if scaler == nil { panic("nil scaler") }
	self.scaler = scaler
}

// Returns the surface's target image.
func (self *ImageSurface) Target() draw.Image { return self.target }

// Fills the whole target with the given color.
func (self *ImageSurface) Clear(fill color.Color) {
	draw.Draw(self.target, self.target.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)
}

// Implements [Surface].FillRect(...)
func (self *ImageSurface) FillRect(rect image.Rectangle, fill color.Color) error {
	if !wellFormed(rect) { return invalidRectError(rect) }
	draw.Draw(self.target, rect, image.NewUniform(fill), image.Point{}, draw.Src)
	return nil
}

// Implements [Surface].DrawImage(...)
func (self *ImageSurface) DrawImage(img GlyphImage, rect image.Rectangle, tint color.Color) error {
	if img == nil { return errNilImage }
	if !wellFormed(rect) { return invalidRectError(rect) }
	if rect.Empty() || !rect.Overlaps(self.target.Bounds()) { return nil }
	if img.Rect.Empty() { return nil }

	source := newTintedImage(img, tint)
	self.scaler.Scale(self.target, rect, source, img.Rect, draw.Over, nil)
	return nil
}

// Wraps a glyph image to multiply its (premultiplied) colors by a
// tint on the fly, leaving the original pixels untouched.
type tintedImage struct {
	source *image.RGBA
	r, g, b, a uint32
}

func newTintedImage(source *image.RGBA, tint color.Color) *tintedImage {
	r, g, b, a := tint.RGBA()
	return &tintedImage{ source: source, r: r, g: g, b: b, a: a }
}

func (self *tintedImage) ColorModel() color.Model { return color.RGBA64Model }
func (self *tintedImage) Bounds() image.Rectangle { return self.source.Rect }
func (self *tintedImage) At(x, y int) color.Color { return self.RGBA64At(x, y) }

func (self *tintedImage) RGBA64At(x, y int) color.RGBA64 {
	pixel := self.source.RGBAAt(x, y)
	return color.RGBA64{
		R: uint16(uint32(pixel.R)*0x101*self.r/0xFFFF),
		G: uint16(uint32(pixel.G)*0x101*self.g/0xFFFF),
		B: uint16(uint32(pixel.B)*0x101*self.b/0xFFFF),
		A: uint16(uint32(pixel.A)*0x101*self.a/0xFFFF),
	}
}
