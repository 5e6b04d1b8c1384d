//go:build gtxt

package celltxt

import "sync"
import "image"
import "testing"
import "image/color"

import "golang.org/x/image/font/gofont/gomono"

import "github.com/tinne26/celltxt/cache"

var testCacheOnce sync.Once
var testCache *GlyphCache
var testCacheErr error

// Shared across tests, caches are read-only.
func getTestCache(t *testing.T) *GlyphCache {
	t.Helper()
	testCacheOnce.Do(func() {
		testCache, testCacheErr = cache.BuildFromBytes(gomono.TTF, 32, color.White)
	})
	if testCacheErr != nil { t.Fatalf("test cache build failed: %s", testCacheErr) }
	return testCache
}

// A surface operation, as recorded by recordingSurface.
type surfaceOp struct {
	Kind string // "fill" or "draw"
	Rect image.Rectangle
	Color color.Color
	Image GlyphImage
}

type recordingSurface struct {
	ops []surfaceOp
	failOn int // fail on the nth op (1-based), 0 to never fail
	failErr error
}

func (self *recordingSurface) record(op surfaceOp) error {
	self.ops = append(self.ops, op)
	if self.failOn == len(self.ops) { return self.failErr }
	return nil
}

func (self *recordingSurface) FillRect(rect image.Rectangle, fill color.Color) error {
	return self.record(surfaceOp{ Kind: "fill", Rect: rect, Color: fill })
}

func (self *recordingSurface) DrawImage(img GlyphImage, rect image.Rectangle, tint color.Color) error {
	return self.record(surfaceOp{ Kind: "draw", Rect: rect, Color: tint, Image: img })
}

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}
