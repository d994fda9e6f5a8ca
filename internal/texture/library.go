package texture

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Image is a shared reference to one image file. Material nodes point at
// images, never at paths, so a file used by several materials is loaded once.
type Image struct {
	Name string
	Path string
	Info Info
	// ProbeErr is set when header probing was requested and failed.
	ProbeErr error
}

// Library deduplicates images by absolute path and keeps names unique.
// It is owned by a single pipeline run and is not safe for concurrent use.
type Library struct {
	probe bool
	log   *zap.Logger
	items map[string]*Image
	names map[string]bool
	order []*Image
}

// NewLibrary creates an empty image library. With probe set, each newly
// loaded image has its header read for dimensions.
func NewLibrary(probe bool, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{
		probe: probe,
		log:   log,
		items: make(map[string]*Image),
		names: make(map[string]bool),
	}
}

// Load returns the image for path, creating it on first use.
func (l *Library) Load(path string) *Image {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	if img, ok := l.items[key]; ok {
		return img
	}

	img := &Image{Name: l.uniqueName(filepath.Base(path)), Path: path}
	if l.probe {
		info, err := Probe(path)
		if err != nil {
			img.ProbeErr = err
			l.log.Debug("image header probe failed", zap.String("path", path), zap.Error(err))
		} else {
			img.Info = info
		}
	}
	l.items[key] = img
	l.order = append(l.order, img)
	return img
}

// uniqueName returns name, or name.001, name.002 ... if it is taken.
func (l *Library) uniqueName(name string) string {
	out := name
	for i := 1; l.names[out]; i++ {
		out = fmt.Sprintf("%s.%03d", name, i)
	}
	l.names[out] = true
	return out
}

// Images returns all loaded images in load order.
func (l *Library) Images() []*Image {
	return l.order
}

// Len returns the number of loaded images.
func (l *Library) Len() int {
	return len(l.order)
}
