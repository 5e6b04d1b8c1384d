package cache

import "fmt"
import "time"
import "io/fs"
import "image/color"

import "github.com/tinne26/celltxt/mask"
import "github.com/tinne26/celltxt/internal"

// A cached glyph: its image and the intrinsic pixel dimensions
// it was rasterized at.
type Glyph struct {
	Image GlyphImage
	Width int
	Height int
}

// A GlyphCache owns one pre-rasterized image for each rune in the
// repertoire. It's created by [Build]() (or its variants) and can't
// be modified afterwards.
//
// Lookups are concurrent-safe. [GlyphCache.Release]() is not, and
// must only be called once nothing else is using the cache.
type GlyphCache struct {
	glyphs map[rune]Glyph
	fontName string
	pointSize float64
	tint color.Color
	byteSize int
}

// Builds a glyph cache from the font at the given path. The point size
// is in pixels per em (see [mask.DefaultPointSize]), and the tint is the
// color applied to all glyph images (white is recommended, as images are
// recolored by multiplication at draw time).
//
// Errors match [ErrFontLoad] if the font can't be loaded and
// [ErrGlyphRaster] if any glyph fails to rasterize. In both cases
// the returned cache is nil.
func Build(fontPath string, pointSize float64, tint color.Color) (*GlyphCache, error) {
	face, err := mask.LoadFace(fontPath, pointSize)
	if err != nil { return nil, &FontLoadError{ Source: fontPath, Err: err } }
	return BuildFromFace(face, tint)
}

// Same as [Build](), but for embedded and virtual filesystems.
func BuildFromFS(filesys fs.FS, fontPath string, pointSize float64, tint color.Color) (*GlyphCache, error) {
	face, err := mask.LoadFaceFromFS(filesys, fontPath, pointSize)
	if err != nil { return nil, &FontLoadError{ Source: fontPath, Err: err } }
	return BuildFromFace(face, tint)
}

// Same as [Build](), but parsing the font from raw bytes.
func BuildFromBytes(fontBytes []byte, pointSize float64, tint color.Color) (*GlyphCache, error) {
	face, err := mask.LoadFaceFromBytes(fontBytes, pointSize)
	if err != nil { return nil, &FontLoadError{ Source: "<bytes>", Err: err } }
	return BuildFromFace(face, tint)
}

// Builds a glyph cache from an already loaded face. Useful to
// configure a custom [mask.Rasterizer] before building.
func BuildFromFace(face *mask.Face, tint color.Color) (*GlyphCache, error) {
	if face == nil { panic("nil face") }
	start := time.Now()
	cache := &GlyphCache{
		glyphs: make(map[rune]Glyph, RepertoireSize()),
		fontName: face.Name(),
		pointSize: face.PointSize(),
		tint: tint,
	}

	var err error
	var missing []rune
	EachRepertoireRune(func(codePoint rune) {
		if err != nil { return }
		var found bool
		found, err = cache.rasterize(face, codePoint)
		if err == nil && !found { missing = append(missing, codePoint) }
	})
	if err != nil {
		cache.Release()
		return nil, err
	}

	logger := internal.Logger()
	if len(missing) > 0 {
		logger.Warn("font doesn't cover the whole repertoire, using .notdef",
			"font", cache.fontName, "missing", len(missing), "runes", string(missing))
	}
	logger.Debug("glyph cache built",
		"font", cache.fontName,
		"size", cache.pointSize,
		"glyphs", len(cache.glyphs),
		"bytes", cache.byteSize,
		"elapsed", time.Since(start))
	return cache, nil
}

// Rasterizes and stores a single rune. Returns whether the
// font had a real glyph for it.
func (self *GlyphCache) rasterize(face *mask.Face, codePoint rune) (bool, error) {
	found, err := face.HasRune(codePoint)
	if err != nil { return false, &RasterError{ Rune: codePoint, Err: err } }
	bitmap, err := face.RenderGlyph(codePoint, self.tint)
	if err != nil { return false, &RasterError{ Rune: codePoint, Err: err } }

	width, height := bitmap.Rect.Dx(), bitmap.Rect.Dy()
	self.glyphs[codePoint] = Glyph{
		Image: newGlyphImage(bitmap),
		Width: width,
		Height: height,
	}
	self.byteSize += int(GlyphImageByteSize(width, height))
	return found, nil
}

// Returns the glyph for the given rune, or a [*LookupError] matching
// [ErrGlyphNotFound] if the rune is outside the repertoire.
func (self *GlyphCache) Glyph(codePoint rune) (Glyph, error) {
	glyph, found := self.glyphs[codePoint]
	if !found { return Glyph{}, &LookupError{ Rune: codePoint } }
	return glyph, nil
}

// Returns the image for the given rune. The image belongs to the cache:
// don't modify it, and don't use it after [GlyphCache.Release]().
func (self *GlyphCache) Lookup(codePoint rune) (GlyphImage, error) {
	glyph, err := self.Glyph(codePoint)
	return glyph.Image, err
}

// Returns the intrinsic pixel dimensions of the given rune's image.
func (self *GlyphCache) Size(codePoint rune) (width, height int, err error) {
	glyph, err := self.Glyph(codePoint)
	return glyph.Width, glyph.Height, err
}

// Returns the number of cached glyphs. Equal to [RepertoireSize]()
// until the cache is released.
func (self *GlyphCache) Len() int { return len(self.glyphs) }

// Returns the name of the font the cache was built from.
func (self *GlyphCache) FontName() string { return self.fontName }

// Returns the point size the glyphs were rasterized at.
func (self *GlyphCache) PointSize() float64 { return self.pointSize }

// Returns the tint the glyphs were rasterized with.
func (self *GlyphCache) Tint() color.Color { return self.tint }

// Returns an approximation of the memory used by the glyph images.
func (self *GlyphCache) ByteSize() int { return self.byteSize }

// Releases all the glyph images together. Lookups fail with
// [ErrGlyphNotFound] afterwards. Releasing twice is harmless.
func (self *GlyphCache) Release() {
	for _, glyph := range self.glyphs {
		releaseGlyphImage(glyph.Image)
	}
	self.glyphs = nil
	self.byteSize = 0
}

// Implements [fmt.Stringer].
func (self *GlyphCache) String() string {
	return fmt.Sprintf("GlyphCache{font: %q, size: %g, glyphs: %d}", self.fontName, self.pointSize, len(self.glyphs))
}
