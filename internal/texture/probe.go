package texture

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrNoProbe is returned for formats without a header reader (exr).
var ErrNoProbe = errors.New("texture: no header reader for format")

// Info is what the header of an image file says about it.
type Info struct {
	Width  int
	Height int
	Format string
}

type headerReader struct {
	format string
	decode func(io.Reader) (image.Config, error)
}

// readers are picked by extension. The tga package registers a format with
// an empty magic string, so image.DecodeConfig sniffing would hand every
// file to it.
var readers = map[string]headerReader{
	"png":  {"png", png.DecodeConfig},
	"jpg":  {"jpeg", jpeg.DecodeConfig},
	"jpeg": {"jpeg", jpeg.DecodeConfig},
	"gif":  {"gif", gif.DecodeConfig},
	"bmp":  {"bmp", bmp.DecodeConfig},
	"tiff": {"tiff", tiff.DecodeConfig},
	"tga":  {"tga", tga.DecodeConfig},
}

// Probe reads only the image header of path. Pixel data is never decoded.
func Probe(path string) (Info, error) {
	r, ok := readers[Ext(path)]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrNoProbe, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := r.decode(f)
	if err != nil {
		return Info{}, fmt.Errorf("texture: probe %s: %w", path, err)
	}
	return Info{Width: cfg.Width, Height: cfg.Height, Format: r.format}, nil
}
