package mathutil

import "math"

// Box3 is an axis-aligned bounding box. An empty box has Min > Max.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// EmptyBox returns a box that any point will expand.
func EmptyBox() Box3 {
	inf := math.Inf(1)
	return Box3{
		Min: Vec3{inf, inf, inf},
		Max: Vec3{-inf, -inf, -inf},
	}
}

// BoxOf returns the bounds of pts, or an empty box when pts is empty.
func BoxOf(pts []Vec3) Box3 {
	b := EmptyBox()
	for _, p := range pts {
		b = b.Expand(p)
	}
	return b
}

// Expand returns b grown to contain p.
func (b Box3) Expand(p Vec3) Box3 {
	return Box3{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Size returns the extent along each axis (zero for an empty box).
func (b Box3) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}
