//go:build gtxt

package celltxt

import "math"
import "image"
import "errors"
import "testing"
import "image/color"

import "github.com/google/go-cmp/cmp"

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// Same formula, computed in floating point.
func expectScaledWidth(t *testing.T, glyphs *GlyphCache, codePoint rune, cellHeight int) int {
	t.Helper()
	width, height, err := glyphs.Size(codePoint)
	if err != nil { t.Fatal(err) }
	return int(math.Round(float64(width)*float64(cellHeight)/float64(height)))
}

func mustLookup(t *testing.T, glyphs *GlyphCache, codePoint rune) GlyphImage {
	t.Helper()
	img, err := glyphs.Lookup(codePoint)
	if err != nil { t.Fatal(err) }
	return img
}

func TestDrawTextEmpty(t *testing.T) {
	compositor := NewCompositor(getTestCache(t))
	surface := &recordingSurface{}
	for _, cellHeight := range []int{50, 0, -1} {
		err := compositor.DrawText(surface, "", red, black, image.Pt(3, 4), cellHeight)
		if err != nil { t.Fatalf("unexpected error: %s", err) }
	}
	err := compositor.DrawRunes(surface, nil, red, black, image.Pt(3, 4), 50)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(surface.ops) != 0 { t.Fatalf("expected no surface ops, got %d", len(surface.ops)) }
}

func TestDrawTextSingleGlyph(t *testing.T) {
	glyphs := getTestCache(t)
	compositor := NewCompositor(glyphs)
	surface := &recordingSurface{}

	err := compositor.DrawText(surface, "A", red, black, image.Pt(0, 0), 50)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	rect := image.Rect(0, 0, expectScaledWidth(t, glyphs, 'A', 50), 50)
	expected := []surfaceOp{
		{ Kind: "fill", Rect: rect, Color: black },
		{ Kind: "draw", Rect: rect, Color: red, Image: mustLookup(t, glyphs, 'A') },
	}
	if diff := cmp.Diff(expected, surface.ops); diff != "" {
		t.Fatalf("surface ops mismatch (-want +got):\n%s", diff)
	}
	if surface.ops[1].Image != expected[1].Image { t.Fatal("expected the cached image for 'A' to be drawn") }
}

func TestDrawTextContiguous(t *testing.T) {
	glyphs := getTestCache(t)
	compositor := NewCompositor(glyphs)
	surface := &recordingSurface{}

	origin := image.Pt(10, 20)
	err := compositor.DrawText(surface, "AB▒", red, black, origin, 50)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if len(surface.ops) != 6 { t.Fatalf("expected 6 surface ops, got %d", len(surface.ops)) }

	x := origin.X
	for i, codePoint := range []rune{'A', 'B', '▒'} {
		width := expectScaledWidth(t, glyphs, codePoint, 50)
		rect := image.Rect(x, origin.Y, x + width, origin.Y + 50)
		fill, draw := surface.ops[i*2], surface.ops[i*2 + 1]
		if fill.Kind != "fill" || fill.Rect != rect {
			t.Fatalf("%U: expected fill at %v, got %s at %v", codePoint, rect, fill.Kind, fill.Rect)
		}
		if draw.Kind != "draw" || draw.Rect != rect {
			t.Fatalf("%U: expected draw at %v, got %s at %v", codePoint, rect, draw.Kind, draw.Rect)
		}
		if draw.Image != mustLookup(t, glyphs, codePoint) { t.Fatalf("%U: wrong glyph image", codePoint) }
		x += width
	}

	width, err := compositor.MeasureText("AB▒", 50)
	if err != nil { t.Fatal(err) }
	if width != x - origin.X { t.Fatalf("expected measured width %d, got %d", x - origin.X, width) }
}

func TestDrawRunesMatchesDrawText(t *testing.T) {
	compositor := NewCompositor(getTestCache(t))
	fromText, fromRunes := &recordingSurface{}, &recordingSurface{}
	text := "▀▄ hello ▐▌"
	if err := compositor.DrawText(fromText, text, red, black, image.Pt(1, 2), 17); err != nil { t.Fatal(err) }
	if err := compositor.DrawRunes(fromRunes, []rune(text), red, black, image.Pt(1, 2), 17); err != nil { t.Fatal(err) }
	if diff := cmp.Diff(fromText.ops, fromRunes.ops); diff != "" {
		t.Fatalf("DrawText and DrawRunes mismatch (-text +runes):\n%s", diff)
	}
}

func TestDrawTextGlyphNotFound(t *testing.T) {
	compositor := NewCompositor(getTestCache(t))
	surface := &recordingSurface{}

	err := compositor.DrawText(surface, "AéB", red, black, image.Pt(0, 0), 50)
	if !errors.Is(err, ErrGlyphNotFound) { t.Fatalf("expected ErrGlyphNotFound, got %v", err) }
	var drawErr *DrawError
	if !errors.As(err, &drawErr) { t.Fatalf("expected *DrawError, got %T", err) }
	if drawErr.Rune != 'é' || drawErr.Index != 1 {
		t.Fatalf("expected failure on 'é' at index 1, got %U at %d", drawErr.Rune, drawErr.Index)
	}
	// 'A' stays drawn, nothing after the failure
	if len(surface.ops) != 2 { t.Fatalf("expected 2 surface ops, got %d", len(surface.ops)) }

	_, err = compositor.MeasureText("ok\n", 10)
	if !errors.Is(err, ErrGlyphNotFound) { t.Fatalf("expected ErrGlyphNotFound for line break, got %v", err) }
}

func TestDrawGlyph(t *testing.T) {
	glyphs := getTestCache(t)
	compositor := NewCompositor(glyphs)
	surface := &recordingSurface{}

	rect := image.Rect(5, 5, 15, 35) // anisotropic on purpose
	err := compositor.DrawGlyph(surface, '█', red, black, rect)
	if err != nil { t.Fatal(err) }
	expected := []surfaceOp{
		{ Kind: "fill", Rect: rect, Color: black },
		{ Kind: "draw", Rect: rect, Color: red, Image: mustLookup(t, glyphs, '█') },
	}
	if diff := cmp.Diff(expected, surface.ops); diff != "" {
		t.Fatalf("surface ops mismatch (-want +got):\n%s", diff)
	}

	surface.ops = nil
	err = compositor.DrawGlyph(surface, 0x25A0, red, black, rect)
	if !errors.Is(err, ErrGlyphNotFound) { t.Fatalf("expected ErrGlyphNotFound, got %v", err) }
	if len(surface.ops) != 0 { t.Fatal("expected no surface ops on lookup failure") }
}

func TestDrawTextSurfaceFailure(t *testing.T) {
	compositor := NewCompositor(getTestCache(t))
	cause := errors.New("device lost")
	surface := &recordingSurface{ failOn: 4, failErr: cause }

	err := compositor.DrawText(surface, "abc", red, black, image.Pt(0, 0), 20)
	if !errors.Is(err, ErrSurfaceDraw) { t.Fatalf("expected ErrSurfaceDraw, got %v", err) }
	if !errors.Is(err, cause) { t.Fatalf("expected original cause to be kept, got %v", err) }
	var drawErr *DrawError
	if !errors.As(err, &drawErr) || drawErr.Rune != 'b' || drawErr.Index != 1 {
		t.Fatalf("expected failure on 'b' at index 1, got %v", err)
	}
	if len(surface.ops) != 4 { t.Fatalf("expected 4 surface ops, got %d", len(surface.ops)) }
}

func TestDrawTextInvalidCellHeight(t *testing.T) {
	compositor := NewCompositor(getTestCache(t))
	surface := &recordingSurface{}
	for _, cellHeight := range []int{0, -10} {
		err := compositor.DrawText(surface, "A", red, black, image.Pt(0, 0), cellHeight)
		if !errors.Is(err, ErrInvalidCellHeight) {
			t.Fatalf("cellHeight %d: expected ErrInvalidCellHeight, got %v", cellHeight, err)
		}
	}
	if len(surface.ops) != 0 { t.Fatalf("expected no surface ops, got %d", len(surface.ops)) }
}

func TestScaledWidth(t *testing.T) {
	tests := []struct{ width, height, cellHeight, expected int }{
		{ 10, 20, 50, 25 },
		{ 77, 150, 300, 154 }, // upscaling
		{ 77, 150, 16, 8 },    // 8.21
		{ 3, 2, 1, 2 },        // 1.5 rounds up
		{ 5, 4, 2, 3 },        // 2.5 rounds up
		{ 1, 3, 1, 0 },
		{ 0, 10, 10, 0 },
		{ 10, 0, 10, 0 },
		{ 10, 10, 0, 0 },
	}
	for _, test := range tests {
		got := ScaledWidth(test.width, test.height, test.cellHeight)
		if got != test.expected {
			t.Fatalf("ScaledWidth(%d, %d, %d): expected %d, got %d",
				test.width, test.height, test.cellHeight, test.expected, got)
		}
	}
}

func TestNewCompositorNilCache(t *testing.T) {
	if doesNotPanic(func() { NewCompositor(nil) }) {
		t.Fatal("expected NewCompositor(nil) to panic")
	}
	glyphs := getTestCache(t)
	if NewCompositor(glyphs).Cache() != glyphs { t.Fatal("unexpected cache") }
}
