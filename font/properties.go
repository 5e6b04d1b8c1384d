package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// sfnt.Buffer values can't be shared concurrently, but property
// queries are rare, so a pool is enough.
var bufferPool = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested name property for the given font. If the
// property is missing, [ErrNotFound] will be returned.
func GetProperty(font *sfnt.Font, property sfnt.NameID) (string, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	if err == nil && str == "" { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the given font (e.g. "Go Mono").
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFamily)
}

// Returns whether the font maps the given rune to a real glyph
// instead of .notdef.
func HasRune(font *sfnt.Font, codePoint rune) (bool, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	index, err := font.GlyphIndex(buffer, codePoint)
	if err != nil { return false, err }
	return index != 0, nil
}

// Returns the runes in the given text that the font can't represent,
// in order of appearance. Repeated runes are reported only once.
func GetMissingRunes(font *sfnt.Font, text string) ([]rune, error) {
	buffer := bufferPool.Get().(*sfnt.Buffer)
	defer bufferPool.Put(buffer)

	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if _, done := seen[codePoint]; done { continue }
		seen[codePoint] = struct{}{}
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
