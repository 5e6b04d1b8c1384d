package cache

import "unicode"

import "golang.org/x/text/unicode/rangetable"

// Unexported so nobody can modify it. The table must be kept sorted.
var repertoire = &unicode.RangeTable{
	R16: []unicode.Range16{
		{ Lo: 0x0020, Hi: 0x007F, Stride: 1 }, // printable ASCII (and DEL)
		{ Lo: 0x2580, Hi: 0x259F, Stride: 1 }, // block elements
	},
	LatinOffset: 1,
}

// Returns whether the given rune belongs to the cached repertoire.
func InRepertoire(codePoint rune) bool {
	return unicode.Is(repertoire, codePoint)
}

// Returns the number of runes in the repertoire.
func RepertoireSize() int {
	size := 0
	for _, r16 := range repertoire.R16 {
		size += int((r16.Hi - r16.Lo)/r16.Stride) + 1
	}
	return size
}

// Calls the given function for each rune in the repertoire,
// in ascending order.
func EachRepertoireRune(fn func(rune)) {
	rangetable.Visit(repertoire, fn)
}

// Returns a new slice with all the runes in the repertoire,
// in ascending order.
func RepertoireRunes() []rune {
	runes := make([]rune, 0, RepertoireSize())
	EachRepertoireRune(func(codePoint rune) { runes = append(runes, codePoint) })
	return runes
}
