package material

import (
	"fmt"

	"go.uber.org/zap"

	"obj-setup/internal/texture"
)

// DefaultBumpStrength is the height bump strength used when none is configured.
const DefaultBumpStrength = 0.2

// Node locations in the editor canvas. Purely cosmetic.
var (
	locSurface   = [2]float64{0, 0}
	locOutput    = [2]float64{400, 0}
	locBaseColor = [2]float64{-600, 0}
	locAO        = [2]float64{-600, -300}
	locMix       = [2]float64{-200, 0}
	locMetallic  = [2]float64{-600, -600}
	locRoughness = [2]float64{-600, -900}
	locNormalTex = [2]float64{-600, -1200}
	locNormalOp  = [2]float64{-200, -900}
)

// Options selects how the normal channel is wired.
type Options struct {
	UseBump      bool
	BumpStrength float64
}

func DefaultOptions() Options {
	return Options{BumpStrength: DefaultBumpStrength}
}

// Builder turns classified textures into a material node graph.
type Builder struct {
	opts Options
	lib  *texture.Library
	log  *zap.Logger
}

// NewBuilder returns a builder that resolves images through lib.
func NewBuilder(opts Options, lib *texture.Library, log *zap.Logger) *Builder {
	if lib == nil {
		lib = texture.NewLibrary(false, log)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{opts: opts, lib: lib, log: log}
}

// build is the state of one Build call.
type build struct {
	*Builder
	g       *Graph
	surface *Node
	base    *Node
	err     error
}

func (b *build) connect(from *Node, out Socket, to *Node, in Socket) {
	if b.err != nil {
		return
	}
	b.err = b.g.Connect(from, out, to, in)
}

func (b *build) image(a texture.Asset, loc [2]float64) *Node {
	n := b.g.Add(KindImageSource, loc)
	n.Image = b.lib.Load(a.Path)
	n.Role = a.Role
	n.NonColor = a.Role.NonColor()
	return n
}

// Build discards whatever graph mat had and builds a fresh one from images.
// Missing roles leave the matching surface input at its default. The error
// is non-nil only if the assembled graph breaks a structural invariant.
func (b *Builder) Build(mat *Material, images map[texture.Role]texture.Asset) (*Graph, error) {
	if mat.Graph == nil {
		mat.Graph = NewGraph()
	}
	mat.Graph.Clear()

	st := &build{Builder: b, g: mat.Graph}
	st.surface = st.g.Add(KindShadingSurface, locSurface)
	output := st.g.Add(KindOutput, locOutput)
	st.connect(st.surface, SocketBSDF, output, SocketSurface)

	_, hasAO := images[texture.AO]
	// texture.Roles lists BaseColor before AO, so the blend finds st.base set.
	for _, role := range texture.Roles {
		a, ok := images[role]
		if !ok {
			continue
		}
		switch role {
		case texture.BaseColor:
			st.base = st.image(a, locBaseColor)
			if !hasAO {
				st.connect(st.base, SocketColor, st.surface, SocketBaseColor)
			}
		case texture.AO:
			st.ao(a)
		case texture.Metallic:
			st.scalar(a, locMetallic, SocketMetallic)
		case texture.Roughness:
			st.scalar(a, locRoughness, SocketRoughness)
		case texture.Normal:
			st.normal(a)
		case texture.Unclassified:
		}
	}
	if st.err != nil {
		return nil, fmt.Errorf("material: build %s: %w", mat.Name, st.err)
	}
	if err := st.g.Validate(); err != nil {
		return nil, fmt.Errorf("material: build %s: %w", mat.Name, err)
	}

	b.log.Debug("material graph built",
		zap.String("material", mat.Name),
		zap.Int("nodes", len(st.g.Nodes())),
		zap.Int("links", len(st.g.Links())),
	)
	return st.g, nil
}

// ao multiplies base color by the occlusion map and feeds the product to
// the surface in place of the raw base color.
func (b *build) ao(a texture.Asset) {
	tex := b.image(a, locAO)
	mix := b.g.Add(KindMultiplyBlend, locMix)
	mix.Factor = 1

	if b.base != nil {
		b.connect(b.base, SocketColor, mix, SocketColor1)
	}
	b.connect(tex, SocketColor, mix, SocketColor2)
	b.connect(mix, SocketColor, b.surface, SocketBaseColor)
}

func (b *build) scalar(a texture.Asset, loc [2]float64, in Socket) {
	tex := b.image(a, loc)
	b.connect(tex, SocketColor, b.surface, in)
}

func (b *build) normal(a texture.Asset) {
	tex := b.image(a, locNormalTex)
	var op *Node
	if b.opts.UseBump {
		op = b.g.Add(KindHeightBump, locNormalOp)
		op.Strength = b.opts.BumpStrength
		b.connect(tex, SocketColor, op, SocketHeight)
	} else {
		op = b.g.Add(KindNormalMap, locNormalOp)
		op.Strength = 1
		b.connect(tex, SocketColor, op, SocketColor)
	}
	b.connect(op, SocketNormal, b.surface, SocketNormal)
}
