package mask

import "image"

import "golang.org/x/image/math/fixed"

const fractMask fixed.Int26_6 = 0x3F

// Given the outline bounds and an origin (only its fractional part is
// considered), it returns the integer mask width and height, the offset
// that moves outline points into the positive quadrant and the offset
// to apply to the final mask so its bounds are relative to the origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	maskCorrection := image.Pt(floorMinX, floorMinY)

	var normOffset fixed.Point26_6
	normOffset.X = -fixed.I(floorMinX) + (origin.X & fractMask)
	normOffset.Y = -fixed.I(floorMinY) + (origin.Y & fractMask)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, maskCorrection
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64, float32(point.Y)/64
}
