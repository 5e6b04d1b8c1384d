package celltxt

import "unicode/utf8"

// Iterators over the runes to composite, so strings and rune slices
// can share the same drawing code without conversions.

type runeIterator interface {
	// Returns -1 when there are no more runes.
	Next() rune
}

type strIterator struct {
	text string
	index int
}

func (self *strIterator) Next() rune {
	if self.index < len(self.text) {
		codePoint, runeSize := utf8.DecodeRuneInString(self.text[self.index:])
		self.index += runeSize
		return codePoint
	} else {
		return -1
	}
}

type runesIterator struct {
	runes []rune
	index int
}

func (self *runesIterator) Next() rune {
	if self.index < len(self.runes) {
		codePoint := self.runes[self.index]
		self.index += 1
		if codePoint < 0 { return utf8.RuneError } // keep -1 reserved
		return codePoint
	} else {
		return -1
	}
}
