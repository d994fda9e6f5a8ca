package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsSecondLinkOnInput(t *testing.T) {
	g := NewGraph()
	surf := g.Add(KindShadingSurface, [2]float64{})
	a := g.Add(KindImageSource, [2]float64{})
	b := g.Add(KindImageSource, [2]float64{})

	require.NoError(t, g.Connect(a, SocketColor, surf, SocketRoughness))
	assert.ErrorIs(t, g.Connect(b, SocketColor, surf, SocketRoughness), ErrSocketTaken)
	assert.NoError(t, g.Connect(b, SocketColor, surf, SocketMetallic))

	src, ok := g.Source(surf, SocketRoughness)
	require.True(t, ok)
	assert.Same(t, a, src)
	_, ok = g.Source(surf, SocketNormal)
	assert.False(t, ok)
}

func TestConnectChecksSockets(t *testing.T) {
	g := NewGraph()
	surf := g.Add(KindShadingSurface, [2]float64{})
	out := g.Add(KindOutput, [2]float64{})
	img := g.Add(KindImageSource, [2]float64{})

	assert.ErrorIs(t, g.Connect(img, SocketNormal, surf, SocketNormal), ErrBadSocket)
	assert.ErrorIs(t, g.Connect(img, SocketColor, out, SocketColor), ErrBadSocket)
	assert.ErrorIs(t, g.Connect(out, SocketBSDF, surf, SocketNormal), ErrBadSocket)

	other := NewGraph().Add(KindImageSource, [2]float64{})
	assert.ErrorIs(t, g.Connect(other, SocketColor, surf, SocketMetallic), ErrForeignNode)
}

func TestConnectRejectsCycle(t *testing.T) {
	g := NewGraph()
	a := g.Add(KindMultiplyBlend, [2]float64{})
	b := g.Add(KindMultiplyBlend, [2]float64{})
	c := g.Add(KindMultiplyBlend, [2]float64{})

	require.NoError(t, g.Connect(a, SocketColor, b, SocketColor1))
	require.NoError(t, g.Connect(b, SocketColor, c, SocketColor1))
	assert.ErrorIs(t, g.Connect(c, SocketColor, a, SocketColor1), ErrCycle)
	assert.ErrorIs(t, g.Connect(a, SocketColor, a, SocketColor2), ErrCycle)
}

func TestValidate(t *testing.T) {
	g := NewGraph()
	assert.Error(t, g.Validate())

	surf := g.Add(KindShadingSurface, [2]float64{})
	assert.Error(t, g.Validate())

	out := g.Add(KindOutput, [2]float64{})
	require.NoError(t, g.Connect(surf, SocketBSDF, out, SocketSurface))
	assert.NoError(t, g.Validate())

	g.Add(KindOutput, [2]float64{})
	assert.Error(t, g.Validate())

	g.Clear()
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Links())
}

func TestKindNames(t *testing.T) {
	b, err := KindHeightBump.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "height_bump", string(b))
	assert.Equal(t, "NodeKind(42)", NodeKind(42).String())
}
