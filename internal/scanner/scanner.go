// Package scanner lists an asset folder and imports its model files.
package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"obj-setup/internal/layout"
	"obj-setup/internal/material"
	"obj-setup/internal/mathutil"
	"obj-setup/internal/metrics"
	"obj-setup/internal/objfile"
	"obj-setup/internal/scene"
	"obj-setup/internal/texture"
)

// ModelExt is the model file extension, lower case without the dot.
const ModelExt = "obj"

// ErrNotFound is returned when the scan path does not lead to a readable folder.
var ErrNotFound = errors.New("scanner: folder not found")

// Listing is the classified content of one folder, in directory order.
type Listing struct {
	Dir      string
	Models   []texture.File
	Textures *texture.Index
	Notices  []Notice
}

// List resolves path to a folder and sorts its files into models and
// textures. A file path is replaced by its folder with a notice. Anything
// else in the folder is ignored.
func List(path string) (*Listing, error) {
	l := &Listing{}
	dir := path
	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		abs, aerr := filepath.Abs(path)
		if aerr != nil {
			abs = path
		}
		dir = filepath.Dir(abs)
		l.Notices = append(l.Notices, Notice{
			Kind:    FolderFromFile,
			Subject: path,
			Message: fmt.Sprintf("%s is a file, scanning its folder %s", path, dir),
		})
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, dir, err)
	}
	l.Dir = dir
	l.Textures = texture.BuildIndex(dir, entries)
	for _, e := range entries {
		if !e.Type().IsRegular() || texture.Ext(e.Name()) != ModelExt {
			continue
		}
		l.Models = append(l.Models, texture.File{Path: filepath.Join(dir, e.Name()), Name: e.Name()})
	}
	return l, nil
}

// ModelAsset is one model file and the scene object it maps to.
type ModelAsset struct {
	Name           string
	Path           string
	Object         *scene.Object
	Material       *material.Material
	AlreadyPresent bool
	// Geometry is set only for files imported by this scan.
	Geometry *objfile.Stats
}

// Scanner imports model files into a scene, placing each new object after
// the previous one along the cursor's axis.
type Scanner struct {
	scene   *scene.Scene
	cursor  *layout.Cursor
	upright mathutil.Mat3
	log     *zap.Logger
	metrics *metrics.Recorder
}

func New(sc *scene.Scene, cursor *layout.Cursor, log *zap.Logger, rec *metrics.Recorder) *Scanner {
	if cursor == nil {
		cursor = layout.NewCursor(0, layout.DefaultMargin)
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.New()
	}
	return &Scanner{scene: sc, cursor: cursor, upright: mathutil.Mat3Identity(), log: log, metrics: rec}
}

// SetSourceUp declares the up axis model files were authored with. New
// objects get the rotation that stands them upright in the Z-up scene.
func (s *Scanner) SetSourceUp(up mathutil.Axis) {
	s.upright = mathutil.UpToZ(up)
}

// Scan lists path and imports every model file whose name is not yet in
// the scene. Models already present are reused and reported. A file that
// fails to import is reported and skipped. Only an unusable path is an error.
func (s *Scanner) Scan(path string) ([]*ModelAsset, *Listing, error) {
	l, err := List(path)
	if err != nil {
		return nil, nil, err
	}
	for _, n := range l.Notices {
		s.notify(n)
	}

	var assets []*ModelAsset
	for _, f := range l.Models {
		a, n := s.importFile(f)
		if n != nil {
			l.Notices = append(l.Notices, *n)
			s.notify(*n)
		}
		if a != nil {
			assets = append(assets, a)
		}
	}
	return assets, l, nil
}

func (s *Scanner) importFile(f texture.File) (*ModelAsset, *Notice) {
	name := texture.BaseName(f.Name)

	if ob, ok := s.scene.Lookup(name); ok {
		s.metrics.ModelsSkipped.Inc()
		a := &ModelAsset{Name: name, Path: f.Path, Object: ob, AlreadyPresent: true}
		a.Material = s.setupMaterial(ob, name)
		return a, &Notice{
			Kind:    AlreadyPresent,
			Subject: name,
			Message: fmt.Sprintf("skipped import of %s: object already in scene", name),
		}
	}

	data, err := objfile.Parse(f.Path)
	if err != nil {
		s.metrics.FilesFailed.Inc()
		return nil, &Notice{
			Kind:    ImportFailed,
			Subject: f.Path,
			Message: fmt.Sprintf("skipped %s: %v", f.Name, err),
		}
	}

	ob := scene.NewObject(name, &scene.Mesh{Name: name, Verts: data.Verts, Normals: data.Normals})
	ob.SourcePath = f.Path
	ob.Basis = mathutil.FromMat3Translation(s.upright, mathutil.Vec3{})
	ob.Imported = true
	ob.AssetMarked = true
	matName := data.FirstMaterial()
	if matName == "" {
		matName = name
	}
	ob.Materials = []*material.Material{material.New(matName)}
	if err := s.scene.Add(ob); err != nil {
		// Lookup above makes this unreachable for a single writer.
		s.metrics.FilesFailed.Inc()
		return nil, &Notice{Kind: ImportFailed, Subject: f.Path, Message: err.Error()}
	}

	stats := data.Stats()
	lo, hi := s.cursor.Place(ob)
	s.metrics.ModelsImported.Inc()
	s.log.Info("imported model",
		zap.String("model", name),
		zap.String("path", f.Path),
		zap.Int("vertices", len(data.Verts)),
		zap.Int("faces", stats.Faces),
		zap.Float64("min", lo),
		zap.Float64("max", hi),
	)
	for _, w := range data.Warnings {
		s.log.Debug("obj warning", zap.String("model", name), zap.String("warning", w))
	}

	a := &ModelAsset{Name: name, Path: f.Path, Object: ob, Geometry: &stats}
	a.Material = s.setupMaterial(ob, name)
	return a, nil
}

// setupMaterial names the object's first material after the model and makes
// it opaque, creating one if the object has none.
func (s *Scanner) setupMaterial(ob *scene.Object, name string) *material.Material {
	mat := ob.Material()
	if mat == nil {
		mat = material.New(name)
		ob.Materials = append(ob.Materials, mat)
	}
	s.scene.RenameMaterial(mat, name)
	mat.BlendMethod = material.BlendOpaque
	return mat
}

func (s *Scanner) notify(n Notice) {
	s.metrics.NoticesByKind.WithLabelValues(n.Kind.String()).Inc()
	s.log.Warn(n.Message, zap.Stringer("kind", n.Kind), zap.String("subject", n.Subject))
}
