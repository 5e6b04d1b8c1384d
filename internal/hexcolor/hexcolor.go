// Package hexcolor parses the "#RRGGBB" and "#RRGGBBAA" colors used
// by the command line tools.
package hexcolor

import "fmt"
import "strconv"
import "strings"
import "image/color"

// Parses a hex color. The leading '#' is optional. Colors without
// an alpha component are fully opaque.
func Parse(value string) (color.RGBA, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", value)
	}
	bits, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", value, err)
	}
	if len(hex) == 6 { bits = bits << 8 | 0xFF }

	// colors are given straight, convert to premultiplied
	straight := color.NRGBA{ R: uint8(bits >> 24), G: uint8(bits >> 16), B: uint8(bits >> 8), A: uint8(bits) }
	return color.RGBAModel.Convert(straight).(color.RGBA), nil
}

// A [flag.Value] for colors.
type Flag struct{ Color color.RGBA }

func (self *Flag) String() string {
	c := self.Color
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (self *Flag) Set(value string) error {
	parsed, err := Parse(value)
	if err != nil { return err }
	self.Color = parsed
	return nil
}
