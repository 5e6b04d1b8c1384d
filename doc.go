// celltxt draws colored text made of pre-rasterized glyphs, aimed at
// terminal emulators and text-mode interfaces that need simple and
// fast cell rendering instead of a full text layout engine.
//
// Only a fixed repertoire is supported: printable ASCII and the block
// elements (U+2580 to U+259F). The glyphs are rasterized once, at a big
// size, into a [GlyphCache]:
//   glyphs, err := celltxt.LoadCache("assets/InputMono-Regular.ttf")
//   if err != nil { ... }
//   defer glyphs.Release()
//
// Then, on each frame, a [Compositor] scales the cached glyphs to the
// requested cell height and draws them onto a [Surface]:
//   compositor := celltxt.NewCompositor(glyphs)
//   err = compositor.DrawText(celltxt.NewEbitenSurface(screen), "Hello ▒▒", red, black, image.Pt(8, 8), 24)
//
// Every glyph is forced to the cell height and keeps its own aspect
// ratio, so the advance of each glyph depends on the font. With a
// monospace font, this results in a regular grid.
//
// By default the package targets Ebitengine. Building with the gtxt tag
// switches glyph images to [*image.RGBA] and provides [ImageSurface] to
// draw on any [image/draw.Image] instead.
package celltxt
