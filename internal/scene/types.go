package scene

import (
	"obj-setup/internal/material"
	"obj-setup/internal/mathutil"
)

// Mesh holds the geometry owned by one object, in object-local space.
type Mesh struct {
	Name    string
	Verts   []mathutil.Vec3
	Normals []mathutil.Vec3
}

// Transform applies m to the vertex positions. Normals are rotated by the
// inverse transpose of the linear part and renormalized.
func (ms *Mesh) Transform(m mathutil.Mat4) {
	for i, v := range ms.Verts {
		ms.Verts[i] = m.MulPoint(v)
	}
	if len(ms.Normals) == 0 {
		return
	}
	nm := m.Mat3().Inverse().Transpose()
	for i, n := range ms.Normals {
		ms.Normals[i] = nm.MulVec3(n).Normalize()
	}
}

// Object is one placed item in the scene.
type Object struct {
	Name       string
	SourcePath string
	Mesh       *Mesh
	Materials  []*material.Material
	// Basis is the placement transform relative to the parent.
	Basis    mathutil.Mat4
	Parent   *Object
	Children []*Object

	// Imported marks objects created by the import pipeline.
	Imported bool
	// AssetMarked flags the object for the host's asset browser.
	AssetMarked bool
}

// NewObject returns an object with an identity placement.
func NewObject(name string, mesh *Mesh) *Object {
	return &Object{Name: name, Mesh: mesh, Basis: mathutil.Mat4Identity()}
}

// World returns the object's world matrix.
func (o *Object) World() mathutil.Mat4 {
	if o.Parent == nil {
		return o.Basis
	}
	return mathutil.Mat4Mul(o.Parent.World(), o.Basis)
}

// Location returns the translation part of Basis.
func (o *Object) Location() mathutil.Vec3 {
	return o.Basis.Translation()
}

func (o *Object) SetLocation(v mathutil.Vec3) {
	o.Basis.SetTranslation(v)
}

// Material returns the material in the first slot, or nil.
func (o *Object) Material() *material.Material {
	if len(o.Materials) == 0 {
		return nil
	}
	return o.Materials[0]
}

// SetParent attaches o under p, keeping Basis as the parent-relative transform.
func (o *Object) SetParent(p *Object) {
	if o.Parent != nil {
		kids := o.Parent.Children
		for i, c := range kids {
			if c == o {
				o.Parent.Children = append(kids[:i], kids[i+1:]...)
				break
			}
		}
	}
	o.Parent = p
	if p != nil {
		p.Children = append(p.Children, o)
	}
}
