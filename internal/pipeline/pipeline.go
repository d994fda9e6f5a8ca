// Package pipeline is the command layer a host calls into: scan and import
// a folder, bake scale, and line objects up.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"obj-setup/internal/layout"
	"obj-setup/internal/material"
	"obj-setup/internal/mathutil"
	"obj-setup/internal/metrics"
	"obj-setup/internal/scanner"
	"obj-setup/internal/scene"
	"obj-setup/internal/texture"
	"obj-setup/internal/transform"
)

// Options configures a pipeline.
type Options struct {
	Material material.Options
	Axis     mathutil.Axis
	Margin   float64
	Claim    texture.ClaimPolicy
	Probe    bool
	// SourceUp is the up axis of the model files.
	SourceUp mathutil.Axis
}

func DefaultOptions() Options {
	return Options{
		Material: material.DefaultOptions(),
		Axis:     mathutil.AxisX,
		Margin:   layout.DefaultMargin,
		Claim:    texture.ClaimLongest,
		SourceUp: mathutil.AxisZ,
	}
}

// Pipeline runs commands against one scene. Commands are synchronous and
// assume nothing else writes to the scene meanwhile.
type Pipeline struct {
	Scene   *scene.Scene
	Images  *texture.Library
	opts    Options
	log     *zap.Logger
	metrics *metrics.Recorder
	builder *material.Builder
}

func New(sc *scene.Scene, opts Options, log *zap.Logger, rec *metrics.Recorder) *Pipeline {
	if sc == nil {
		sc = scene.New()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = metrics.New()
	}
	lib := texture.NewLibrary(opts.Probe, log)
	return &Pipeline{
		Scene:   sc,
		Images:  lib,
		opts:    opts,
		log:     log,
		metrics: rec,
		builder: material.NewBuilder(opts.Material, lib, log),
	}
}

// Metrics returns the recorder the pipeline counts into.
func (p *Pipeline) Metrics() *metrics.Recorder {
	return p.metrics
}

// ModelResult is what one model got out of a scan.
type ModelResult struct {
	Asset *scanner.ModelAsset
	// Candidates are all textures the model claimed, unclassified included.
	Candidates []texture.Asset
	Images     map[texture.Role]texture.Asset
	Graph      *material.Graph
}

// Result summarizes a ScanAndImport call.
type Result struct {
	Dir      string
	Models   []ModelResult
	Notices  []scanner.Notice
	Imported int
}

// ScanAndImport imports the new models under path and rebuilds the material
// graph of every model found there, new or already present.
func (p *Pipeline) ScanAndImport(path string) (*Result, error) {
	sc := scanner.New(p.Scene, layout.NewCursor(p.opts.Axis, p.opts.Margin), p.log, p.metrics)
	sc.SetSourceUp(p.opts.SourceUp)
	assets, listing, err := sc.Scan(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: scan %s: %w", path, err)
	}

	res := &Result{Dir: listing.Dir, Notices: listing.Notices}

	// A folder may hold Rock.obj and Rock.OBJ; the material is built once.
	seen := make(map[string]bool)
	var names []string
	var unique []*scanner.ModelAsset
	for _, a := range assets {
		if !a.AlreadyPresent {
			res.Imported++
		}
		if seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		names = append(names, a.Name)
		unique = append(unique, a)
	}

	owned := texture.AssignOwners(names, listing.Textures.Files(), p.opts.Claim)
	for _, a := range unique {
		mr, err := p.setupMaterial(a, owned[a.Name])
		if err != nil {
			return res, err
		}
		res.Models = append(res.Models, mr)
	}
	return res, nil
}

func (p *Pipeline) setupMaterial(a *scanner.ModelAsset, files []texture.File) (ModelResult, error) {
	mr := ModelResult{Asset: a}
	mr.Candidates = texture.Candidates(a.Name, files)
	mr.Images = texture.Classify(a.Name, files)

	for _, c := range mr.Candidates {
		p.metrics.TexturesByRole.WithLabelValues(c.Role.String()).Inc()
		if c.Role == texture.Unclassified {
			p.log.Debug("texture matches no channel suffix", zap.String("model", a.Name), zap.String("texture", c.Name))
		}
	}

	g, err := p.builder.Build(a.Material, mr.Images)
	if err != nil {
		return mr, fmt.Errorf("pipeline: %s: %w", a.Name, err)
	}
	mr.Graph = g
	p.metrics.GraphsBuilt.Inc()
	p.metrics.GraphNodes.Add(float64(len(g.Nodes())))
	p.log.Info("material set up",
		zap.String("model", a.Name),
		zap.Int("textures", len(mr.Images)),
		zap.Int("nodes", len(g.Nodes())),
	)
	return mr, nil
}

// ApplyScale bakes the scale of each object into its mesh, in the order
// given. A nil objs selects the imported objects in scene order. It returns
// the number of objects processed.
func (p *Pipeline) ApplyScale(objs []*scene.Object) int {
	if objs == nil {
		objs = p.Scene.Imported()
	}
	for _, o := range objs {
		transform.Bake(o, transform.Components{Scale: true})
		p.metrics.ObjectsBaked.Inc()
		p.log.Debug("scale applied", zap.String("object", o.Name))
	}
	return len(objs)
}

// LineUp places objs side by side along the configured axis, in the order
// given, starting at zero. A nil objs selects every object sorted by name.
func (p *Pipeline) LineUp(objs []*scene.Object) {
	if objs == nil {
		objs = scene.ByName(p.Scene.Objects())
	}
	layout.LineUp(objs, p.opts.Axis, p.opts.Margin)
	p.metrics.ObjectsLinedUp.Add(float64(len(objs)))
	p.log.Info("objects lined up", zap.Int("objects", len(objs)), zap.Stringer("axis", p.opts.Axis))
}
