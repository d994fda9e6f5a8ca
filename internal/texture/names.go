package texture

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Extensions are the texture file extensions, lower case without the dot.
var Extensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tiff": true,
	"bmp": true, "gif": true, "exr": true, "tga": true,
}

// matToken matches the exporter's material slot token, e.g. "Mat2" in
// "Rock_Metallic01Mat2".
var matToken = regexp.MustCompile(`Mat\d*$`)

// Ext returns the lower-cased text after the last dot of a file name.
func Ext(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// IsTexture reports whether the file name has a texture extension.
func IsTexture(name string) bool {
	return Extensions[Ext(name)]
}

// BaseName returns the text before the first dot of a file name.
func BaseName(name string) string {
	name = filepath.Base(name)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// Normalize lower-cases s and removes underscores.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "")
}

// StripMatToken removes a trailing Mat<digits> token.
func StripMatToken(base string) string {
	return matToken.ReplaceAllString(base, "")
}

// suffixStem is the part of a base name the channel suffix is tested
// against: no Mat token, no trailing variant digits or separators, lower case.
func suffixStem(base string) string {
	s := StripMatToken(base)
	s = strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsDigit(r) || r == '_' || r == '-' || r == ' '
	})
	return strings.ToLower(s)
}
