// Package layout places objects side by side along one axis.
package layout

import (
	"obj-setup/internal/mathutil"
	"obj-setup/internal/scene"
	"obj-setup/internal/transform"
)

// DefaultMargin is the gap left between consecutive objects.
const DefaultMargin = 1.0

// Cursor is the running position along the layout axis. The zero value
// lays out along X with no margin; use NewCursor for the usual setup.
type Cursor struct {
	Axis   mathutil.Axis
	Margin float64
	pos    float64
}

func NewCursor(axis mathutil.Axis, margin float64) *Cursor {
	return &Cursor{Axis: axis, Margin: margin}
}

// Reset moves the cursor back to zero.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Pos returns where the next object's minimum will be placed.
func (c *Cursor) Pos() float64 {
	return c.pos
}

// Place shifts o along the axis so its world-space minimum sits on the
// cursor, then advances the cursor past its maximum plus the margin.
// It returns the placed extent [min, max].
func (c *Cursor) Place(o *scene.Object) (float64, float64) {
	b := transform.WorldBounds(o)
	lo, hi := b.Min[c.Axis], b.Max[c.Axis]
	delta := c.pos - lo
	transform.TranslateWorld(o, c.Axis.Unit().Scale(delta))

	placedMin, placedMax := c.pos, hi+delta
	c.pos = placedMax + c.Margin
	return placedMin, placedMax
}

// LineUp places objs in the given order starting at zero. The caller owns
// the order; nothing is sorted here.
func LineUp(objs []*scene.Object, axis mathutil.Axis, margin float64) {
	c := NewCursor(axis, margin)
	for _, o := range objs {
		c.Place(o)
	}
}
