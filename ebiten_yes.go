//go:build !gtxt

package celltxt

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

var _ Surface = (*EbitenSurface)(nil)

// A [Surface] that draws on an Ebitengine image, typically the screen
// passed to Game.Draw(). Glyphs are scaled on the GPU and tinted with
// a color scale, so the cached images are never modified.
type EbitenSurface struct {
	target *ebiten.Image
	filter ebiten.Filter
}

// Creates a surface for the given target. Glyphs are scaled with
// linear filtering by default (see [EbitenSurface.SetFilter]()).
func NewEbitenSurface(target *ebiten.Image) *EbitenSurface {
	if target == nil { panic("nil target") }
	return &EbitenSurface{ target: target, filter: ebiten.FilterLinear }
}

// Sets the filter used to scale glyphs. [ebiten.FilterNearest] keeps
// block elements crisp at the cost of rougher letters.
func (self *EbitenSurface) SetFilter(filter ebiten.Filter) { self.filter = filter }

// Returns the surface's target image.
func (self *EbitenSurface) Target() *ebiten.Image { return self.target }

// Fills the whole target with the given color.
func (self *EbitenSurface) Clear(fill color.Color) { self.target.Fill(fill) }

// Implements [Surface].FillRect(...)
func (self *EbitenSurface) FillRect(rect image.Rectangle, fill color.Color) error {
	if !wellFormed(rect) { return invalidRectError(rect) }
	rect = rect.Intersect(self.target.Bounds())
	if rect.Empty() { return nil }
	self.target.SubImage(rect).(*ebiten.Image).Fill(fill)
	return nil
}

// Implements [Surface].DrawImage(...)
func (self *EbitenSurface) DrawImage(img GlyphImage, rect image.Rectangle, tint color.Color) error {
	if img == nil { return errNilImage }
	if !wellFormed(rect) { return invalidRectError(rect) }
	if rect.Empty() || !rect.Overlaps(self.target.Bounds()) { return nil }

	bounds := img.Bounds()
	if bounds.Empty() { return nil }
	var opts ebiten.DrawImageOptions
	opts.GeoM.Translate(float64(-bounds.Min.X), float64(-bounds.Min.Y))
	opts.GeoM.Scale(float64(rect.Dx())/float64(bounds.Dx()), float64(rect.Dy())/float64(bounds.Dy()))
	opts.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	opts.ColorScale.ScaleWithColor(tint)
	opts.Filter = self.filter
	self.target.DrawImage(img, &opts)
	return nil
}
