// Package transform moves geometry between an object's placement transform
// and its mesh data.
package transform

import (
	"obj-setup/internal/mathutil"
	"obj-setup/internal/scene"
)

// ApplyWorld returns verts mapped from o's local space into world space.
// Neither o nor verts is modified.
func ApplyWorld(o *scene.Object, verts []mathutil.Vec3) []mathutil.Vec3 {
	w := o.World()
	lin, t := w.Mat3(), w.Translation()
	out := make([]mathutil.Vec3, len(verts))
	for i, v := range verts {
		out[i] = lin.MulVec3(v).Add(t)
	}
	return out
}

// WorldBounds returns the world-space bounding box of o's mesh. Objects
// without vertices get a zero-size box at their world origin.
func WorldBounds(o *scene.Object) mathutil.Box3 {
	if o.Mesh == nil || len(o.Mesh.Verts) == 0 {
		p := o.World().Translation()
		return mathutil.Box3{Min: p, Max: p}
	}
	return mathutil.BoxOf(ApplyWorld(o, o.Mesh.Verts))
}

// TranslateWorld moves o by d in world space, converting d into the
// parent's frame when o has one.
func TranslateWorld(o *scene.Object, d mathutil.Vec3) {
	if o.Parent != nil {
		d = o.Parent.World().Mat3().Inverse().MulVec3(d)
	}
	o.SetLocation(o.Location().Add(d))
}

// Components selects which parts of the placement transform to bake.
type Components struct {
	Location bool
	Rotation bool
	Scale    bool
}

// Bake moves the selected components of o's placement transform into its
// mesh and into the placement of its direct children, so nothing moves in
// world space. Afterwards o.Basis is K = T×R×S with baked parts set to
// identity, and the mesh and children carry K⁻¹×B of the old basis B.
func Bake(o *scene.Object, c Components) {
	b := o.Basis
	t, r, s := b.Decompose()

	id := mathutil.Mat4Identity()
	baked := [3]mathutil.Mat4{id, id, id}
	kept := [3]mathutil.Mat4{
		mathutil.Mat4Translation(t),
		mathutil.FromMat3Translation(r, mathutil.Vec3{}),
		mathutil.Mat4Scale(s),
	}
	for i, on := range [3]bool{c.Location, c.Rotation, c.Scale} {
		if on {
			baked[i], kept[i] = kept[i], baked[i]
		}
	}

	k := mathutil.Compose(kept[0], kept[1], kept[2])
	// With the baked parts trailing T×R×S, K⁻¹×B is exactly their product.
	m := mathutil.Compose(baked[0], baked[1], baked[2])
	trailing := (!c.Location || c.Rotation) && (!c.Rotation || c.Scale)
	if !trailing {
		if inv, ok := k.AffineInverse(); ok {
			m = mathutil.Mat4Mul(inv, b)
		}
	}
	if o.Mesh != nil {
		o.Mesh.Transform(m)
	}
	for _, child := range o.Children {
		child.Basis = mathutil.Mat4Mul(m, child.Basis)
	}
	o.Basis = k
}
