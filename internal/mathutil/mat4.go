package mathutil

// Mat4 is a 4×4 affine matrix stored row-major with the translation in the
// last column. Points are column vectors: p' = M × p.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translation returns a pure translation matrix.
func Mat4Translation(t Vec3) Mat4 {
	m := Mat4Identity()
	m.SetTranslation(t)
	return m
}

// Mat4Scale returns a diagonal scale matrix.
func Mat4Scale(s Vec3) Mat4 {
	return Mat4{
		s[0], 0, 0, 0,
		0, s[1], 0, 0,
		0, 0, s[2], 0,
		0, 0, 0, 1,
	}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

// Compose returns the product of ms from left to right.
func Compose(ms ...Mat4) Mat4 {
	out := Mat4Identity()
	for _, m := range ms {
		out = Mat4Mul(out, m)
	}
	return out
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t[0],
		r[3], r[4], r[5], t[1],
		r[6], r[7], r[8], t[2],
		0, 0, 0, 1,
	}
}

// Mat3 returns the upper-left linear part.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Translation returns the last column.
func (m Mat4) Translation() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

func (m *Mat4) SetTranslation(t Vec3) {
	m[3], m[7], m[11] = t[0], t[1], t[2]
}

// AffineInverse returns the inverse of an affine m. ok is false when the
// linear part is singular.
func (m Mat4) AffineInverse() (inv Mat4, ok bool) {
	lin := m.Mat3()
	if lin.Det() == 0 {
		return Mat4Identity(), false
	}
	li := lin.Inverse()
	return FromMat3Translation(li, li.MulVec3(m.Translation()).Scale(-1)), true
}

// Decompose splits m into translation, rotation and scale such that
// m == T × R × S. R is the column-normalized linear part, not a
// quaternion round trip, so whatever orientation is stored survives exactly.
// S holds the column lengths.
func (m Mat4) Decompose() (t Vec3, r Mat3, s Vec3) {
	lin := m.Mat3()
	return m.Translation(), lin.NormalizedColumns(), lin.ColumnLengths()
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	id := Mat4Identity()
	for i := 0; i < 16; i++ {
		d := m[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
