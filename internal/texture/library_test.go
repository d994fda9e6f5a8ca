package texture

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ftrvxmtrx/tga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))))
}

func TestLibraryDedupesByPath(t *testing.T) {
	lib := NewLibrary(false, nil)
	a := lib.Load("/tex/Rock_AO.png")
	b := lib.Load("/tex/../tex/Rock_AO.png")
	c := lib.Load("/other/Rock_AO.png")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "Rock_AO.png", a.Name)
	assert.Equal(t, "Rock_AO.png.001", c.Name)
	assert.Equal(t, 2, lib.Len())
	assert.Equal(t, []*Image{a, c}, lib.Images())
}

func TestLibraryProbe(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Rock_Albedo.png")
	writePNG(t, p, 8, 4)

	lib := NewLibrary(true, nil)
	img := lib.Load(p)
	require.NoError(t, img.ProbeErr)
	assert.Equal(t, Info{Width: 8, Height: 4, Format: "png"}, img.Info)

	missing := lib.Load(filepath.Join(dir, "gone.png"))
	assert.Error(t, missing.ProbeErr)

	exr := lib.Load(filepath.Join(dir, "Rock_Normal.exr"))
	assert.ErrorIs(t, exr.ProbeErr, ErrNoProbe)
}

func TestHeaderInfoEachFormat(t *testing.T) {
	dir := t.TempDir()
	encoders := map[string]func(io.Writer, image.Image) error{
		"png":  png.Encode,
		"jpg":  func(w io.Writer, m image.Image) error { return jpeg.Encode(w, m, nil) },
		"gif":  func(w io.Writer, m image.Image) error { return gif.Encode(w, m, nil) },
		"bmp":  bmp.Encode,
		"tiff": func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) },
		"tga":  tga.Encode,
	}
	formats := map[string]string{"png": "png", "jpg": "jpeg", "gif": "gif", "bmp": "bmp", "tiff": "tiff", "tga": "tga"}

	for ext, enc := range encoders {
		t.Run(ext, func(t *testing.T) {
			p := filepath.Join(dir, "Rock_Albedo."+ext)
			f, err := os.Create(p)
			require.NoError(t, err)
			require.NoError(t, enc(f, image.NewNRGBA(image.Rect(0, 0, 6, 3))))
			require.NoError(t, f.Close())

			info, err := Probe(p)
			require.NoError(t, err)
			assert.Equal(t, Info{Width: 6, Height: 3, Format: formats[ext]}, info)
		})
	}
}

func TestIndex(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"Rock.obj", "Rock_AO.png", "Rock_Normal.TGA", "readme.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	idx := BuildIndex(dir, entries)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, []string{"Rock_AO.png", "Rock_Normal.TGA"}, names(idx.Files()))
	assert.Equal(t, filepath.Join(dir, "Rock_Normal.TGA"), idx.Files()[1].Path)
}
