package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// Returned when the font path doesn't end in .ttf or .otf.
var ErrInvalidExtension = errors.New("font path must end in .ttf or .otf")

// Parses the given bytes as a font and returns it along its name.
// The bytes must not be modified while the font is in use.
//
// Fonts without a name are still returned, with an empty name and
// a nil error.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	parsed, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, "", err
	}
	name, err := GetName(parsed)
	if err == ErrNotFound {
		return parsed, "", nil
	}
	return parsed, name, err
}

// Parses the font located at the given path. Supported formats
// are .ttf and .otf. Missing files produce an error that matches
// [fs.ErrNotExist] with [errors.Is]().
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", &fs.PathError{ Op: "parse", Path: path, Err: ErrInvalidExtension }
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// Same as [ParseFromPath](), but for embedded and virtual filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", &fs.PathError{ Op: "parse", Path: path, Err: ErrInvalidExtension }
	}

	file, err := filesys.Open(path)
	if err != nil {
		return nil, "", err
	}
	return parseFontFileAndClose(file)
}

// ---- helpers ----

func parseFontFileAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil {
		return nil, "", err
	}
	return ParseFromBytes(fontBytes)
}

// Whether the path ends in .ttf or .otf. Case sensitive.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 || path[len(path) - 4] != '.' {
		return false
	}
	switch path[len(path) - 3:] {
	case "ttf", "otf":
		return true
	default:
		return false
	}
}
