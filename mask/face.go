package mask

import "math"
import "io/fs"
import "errors"
import "image"
import "image/draw"
import "image/color"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/celltxt/font"

// Pixels per em used when no specific size is requested. Big enough
// for glyphs to stay sharp when scaled down to common cell heights.
const DefaultPointSize = 128

const maxPointSize = 4096

var ErrInvalidSize = errors.New("point size must be in (0, 4096]")
var ErrEmptyCell   = errors.New("glyph cell has zero width or height")

// A Face is a parsed font bound to a single point size. It renders
// glyph cells: images as wide as the glyph advance and as tall as
// the font line (ascent + descent), with the glyph drawn on the
// baseline. This is what a terminal-like grid expects, and it
// means spaces produce transparent cells of non-zero size.
//
// Faces can't be used concurrently.
type Face struct {
	font *sfnt.Font
	name string
	buffer sfnt.Buffer
	rasterizer Rasterizer
	ppem fixed.Int26_6
	ascent fixed.Int26_6
	cellHeight int
}

// Parses the font at the given path and creates a face at the given
// point size (in pixels per em).
func LoadFace(path string, pointSize float64) (*Face, error) {
	parsed, name, err := font.ParseFromPath(path)
	if err != nil { return nil, err }
	return newNamedFace(parsed, name, pointSize)
}

// Same as [LoadFace](), but for embedded and virtual filesystems.
func LoadFaceFromFS(filesys fs.FS, path string, pointSize float64) (*Face, error) {
	parsed, name, err := font.ParseFromFS(filesys, path)
	if err != nil { return nil, err }
	return newNamedFace(parsed, name, pointSize)
}

// Same as [LoadFace](), but parsing the font from raw bytes. The
// bytes must not be modified while the face is in use.
func LoadFaceFromBytes(fontBytes []byte, pointSize float64) (*Face, error) {
	parsed, name, err := font.ParseFromBytes(fontBytes)
	if err != nil { return nil, err }
	return newNamedFace(parsed, name, pointSize)
}

// Creates a face for an already parsed font. Panics if the font is nil.
func NewFace(parsed *sfnt.Font, pointSize float64) (*Face, error) {
	if parsed == nil { panic("nil font") }
	name, err := font.GetName(parsed)
	if err != nil && err != font.ErrNotFound { return nil, err }
	return newNamedFace(parsed, name, pointSize)
}

func newNamedFace(parsed *sfnt.Font, name string, pointSize float64) (*Face, error) {
	if !(pointSize > 0 && pointSize <= maxPointSize) { // also catches NaN
		return nil, ErrInvalidSize
	}

	face := &Face{
		font: parsed,
		name: name,
		rasterizer: &DefaultRasterizer{},
		ppem: fixed.Int26_6(math.Round(pointSize*64)),
	}
	metrics, err := parsed.Metrics(&face.buffer, face.ppem, xfont.HintingNone)
	if err != nil { return nil, err }
	face.ascent = metrics.Ascent
	face.cellHeight = (metrics.Ascent + metrics.Descent).Ceil()
	if face.cellHeight <= 0 { return nil, ErrEmptyCell }
	return face, nil
}

// Returns the underlying font.
func (self *Face) Font() *sfnt.Font { return self.font }

// Returns the font name, or an empty string if the font has none.
func (self *Face) Name() string { return self.name }

// Returns the face size in pixels per em.
func (self *Face) PointSize() float64 { return float64(self.ppem)/64 }

// Returns the height of every cell rendered by this face.
func (self *Face) CellHeight() int { return self.cellHeight }

// Sets the rasterizer used on subsequent renders. Nil rasterizers
// are not allowed.
func (self *Face) SetRasterizer(rasterizer Rasterizer) {
	if rasterizer == nil { panic("nil rasterizers not allowed") }
	self.rasterizer = rasterizer
}

// Returns the current rasterizer.
func (self *Face) Rasterizer() Rasterizer { return self.rasterizer }

// Returns whether the font has a glyph for the given rune. Runes
// without a glyph are rendered as .notdef (typically a box).
func (self *Face) HasRune(codePoint rune) (bool, error) {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return false, err }
	return index != 0, nil
}

// Renders the glyph cell for the given rune, with coverage applied
// to the given tint. The result is premultiplied, so a white tint
// gives a mask that can be recolored later by multiplication.
//
// Runes missing from the font, or mapped to glyphs that don't
// advance (control characters in many fonts), are rendered as
// .notdef.
func (self *Face) RenderGlyph(codePoint rune, tint color.Color) (*image.RGBA, error) {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return nil, err }
	if index != 0 {
		advance, err := self.font.GlyphAdvance(&self.buffer, index, self.ppem, xfont.HintingNone)
		if err != nil { return nil, err }
		if advance.Ceil() <= 0 { index = 0 }
	}
	return self.RenderGlyphIndex(index, tint)
}

// Same as [Face.RenderGlyph](), but for a glyph index.
func (self *Face) RenderGlyphIndex(index sfnt.GlyphIndex, tint color.Color) (*image.RGBA, error) {
	advance, err := self.font.GlyphAdvance(&self.buffer, index, self.ppem, xfont.HintingNone)
	if err != nil { return nil, err }
	width := advance.Ceil()
	if width <= 0 { return nil, ErrEmptyCell }

	// segments are only valid until the next buffer use
	outline, err := self.font.LoadGlyph(&self.buffer, index, self.ppem, nil)
	if err != nil { return nil, err }
	dot := fixed.Point26_6{ X: 0, Y: self.ascent }
	alpha, err := Rasterize(outline, self.rasterizer, dot)
	if err != nil { return nil, err }

	cell := image.NewRGBA(image.Rect(0, 0, width, self.cellHeight))
	if alpha != nil {
		shift := image.Pt(dot.X.Floor(), dot.Y.Floor())
		area  := alpha.Rect.Add(shift).Intersect(cell.Rect)
		if !area.Empty() {
			draw.DrawMask(cell, area, image.NewUniform(tint), image.Point{}, alpha, area.Min.Sub(shift), draw.Src)
		}
	}
	return cell, nil
}
