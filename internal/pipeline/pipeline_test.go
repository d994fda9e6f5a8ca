package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obj-setup/internal/material"
	"obj-setup/internal/mathutil"
	"obj-setup/internal/scanner"
	"obj-setup/internal/scene"
	"obj-setup/internal/texture"
	"obj-setup/internal/transform"
)

const boxOBJ = `o Box
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 1
f 1 2 3 4
`

func assetDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		content := ""
		if texture.Ext(n) == "obj" {
			content = boxOBJ
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(content), 0o644))
	}
	return dir
}

func model(t *testing.T, res *Result, name string) ModelResult {
	t.Helper()
	for _, m := range res.Models {
		if m.Asset.Name == name {
			return m
		}
	}
	t.Fatalf("model %s not in result", name)
	return ModelResult{}
}

func TestScanAndImport(t *testing.T) {
	dir := assetDir(t,
		"Rock.obj", "Rock_BaseColor.png", "Rock_AO.jpg", "Rock_Metallic01Mat2.png",
		"Rock_Roughness.tga", "Rock_Normal.png", "Rock_Specular.png",
		"Wood.obj", "Wood_Diffuse.jpg",
	)
	p := New(nil, DefaultOptions(), nil, nil)

	res, err := p.ScanAndImport(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, res.Dir)
	assert.Equal(t, 2, res.Imported)
	assert.Empty(t, res.Notices)
	require.Len(t, res.Models, 2)

	rock := model(t, res, "Rock")
	assert.Len(t, rock.Images, 5)
	assert.Len(t, rock.Candidates, 6)
	assert.Same(t, rock.Asset.Material.Graph, rock.Graph)
	assert.Equal(t, 1, rock.Graph.Count(material.KindNormalMap))
	assert.Equal(t, 1, rock.Graph.Count(material.KindMultiplyBlend))
	assert.Len(t, rock.Graph.Nodes(), 2+1+2+1+1+2)

	wood := model(t, res, "Wood")
	assert.Len(t, wood.Images, 1)
	assert.Len(t, wood.Graph.Nodes(), 3)

	assert.Equal(t, 6, p.Images.Len())
	rec := p.Metrics()
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.GraphsBuilt))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.TexturesByRole.WithLabelValues("unclassified")))
}

func TestScanAndImportRerun(t *testing.T) {
	dir := assetDir(t, "Rock.obj", "Wood.obj", "Rock_Albedo.png")
	p := New(nil, DefaultOptions(), nil, nil)

	_, err := p.ScanAndImport(dir)
	require.NoError(t, err)
	objects := p.Scene.Len()

	res, err := p.ScanAndImport(dir)
	require.NoError(t, err)
	assert.Zero(t, res.Imported)
	assert.Equal(t, objects, p.Scene.Len())

	require.Len(t, res.Notices, 2)
	for _, n := range res.Notices {
		assert.Equal(t, scanner.AlreadyPresent, n.Kind)
	}
	// Materials are rebuilt, not accumulated.
	rock := model(t, res, "Rock")
	assert.Len(t, rock.Graph.Nodes(), 3)
	assert.Len(t, rock.Graph.Links(), 2)
}

func TestScanAndImportMissingFolder(t *testing.T) {
	p := New(nil, DefaultOptions(), nil, nil)
	_, err := p.ScanAndImport(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, scanner.ErrNotFound)
}

func TestScanAndImportUseBump(t *testing.T) {
	dir := assetDir(t, "Rock.obj", "Rock_Normal.png")
	opts := DefaultOptions()
	opts.Material = material.Options{UseBump: true, BumpStrength: 0.2}

	res, err := New(nil, opts, nil, nil).ScanAndImport(dir)
	require.NoError(t, err)
	g := model(t, res, "Rock").Graph
	require.Equal(t, 1, g.Count(material.KindHeightBump))
	assert.Equal(t, 0.2, g.Find(material.KindHeightBump)[0].Strength)
	assert.Zero(t, g.Count(material.KindNormalMap))
}

func TestClaimPolicies(t *testing.T) {
	dir := assetDir(t, "Rock.obj", "Rock01.obj", "Rock01_AO.png", "Rock_AO.png")

	res, err := New(nil, DefaultOptions(), nil, nil).ScanAndImport(dir)
	require.NoError(t, err)
	assert.Equal(t, "Rock_AO.png", model(t, res, "Rock").Images[texture.AO].Name)
	assert.Equal(t, "Rock01_AO.png", model(t, res, "Rock01").Images[texture.AO].Name)

	opts := DefaultOptions()
	opts.Claim = texture.ClaimShared
	res, err = New(nil, opts, nil, nil).ScanAndImport(dir)
	require.NoError(t, err)
	// Directory order puts Rock_AO.png last, so it wins the role for both.
	assert.Equal(t, "Rock_AO.png", model(t, res, "Rock").Images[texture.AO].Name)
	assert.Len(t, model(t, res, "Rock").Candidates, 2)
}

func TestApplyScaleAndLineUp(t *testing.T) {
	dir := assetDir(t, "A.obj", "B.obj")
	p := New(nil, DefaultOptions(), nil, nil)
	_, err := p.ScanAndImport(dir)
	require.NoError(t, err)

	a, _ := p.Scene.Lookup("A")
	a.Basis = mathutil.Mat4Mul(a.Basis, mathutil.Mat4Scale(mathutil.Vec3{3, 3, 3}))
	extra := scene.NewObject("Camera", nil)
	require.NoError(t, p.Scene.Add(extra))

	n := p.ApplyScale(p.Scene.Imported())
	assert.Equal(t, 2, n)
	_, _, s := a.Basis.Decompose()
	assert.Equal(t, mathutil.Vec3{1, 1, 1}, s)
	assert.Equal(t, mathutil.Vec3{3, 0, 0}, a.Mesh.Verts[1])

	objs := scene.ByName(p.Scene.Objects())
	p.LineUp(objs)
	ba := transform.WorldBounds(a)
	bc := transform.WorldBounds(extra)
	bb := transform.WorldBounds(objs[1])
	assert.InDelta(t, 0, ba.Min[0], 1e-9)
	assert.InDelta(t, 3, ba.Max[0], 1e-9)
	assert.InDelta(t, 4, bb.Min[0], 1e-9)
	assert.InDelta(t, bb.Max[0]+1, bc.Min[0], 1e-9)
	assert.Equal(t, 3.0, testutil.ToFloat64(p.Metrics().ObjectsLinedUp))
}

func TestDefaultSelections(t *testing.T) {
	dir := assetDir(t, "B.obj", "A.obj")
	p := New(nil, DefaultOptions(), nil, nil)
	_, err := p.ScanAndImport(dir)
	require.NoError(t, err)

	free := scene.NewObject("Aa", &scene.Mesh{Verts: []mathutil.Vec3{{0, 0, 0}, {5, 0, 0}}})
	free.Basis = mathutil.Mat4Scale(mathutil.Vec3{2, 2, 2})
	require.NoError(t, p.Scene.Add(free))

	assert.Equal(t, 2, p.ApplyScale(nil))
	_, _, s := free.Basis.Decompose()
	assert.Equal(t, mathutil.Vec3{2, 2, 2}, s)

	p.LineUp(nil)
	a, _ := p.Scene.Lookup("A")
	b, _ := p.Scene.Lookup("B")
	assert.InDelta(t, 0, transform.WorldBounds(a).Min[0], 1e-9)
	assert.InDelta(t, 2, transform.WorldBounds(free).Min[0], 1e-9)
	assert.InDelta(t, 13, transform.WorldBounds(b).Min[0], 1e-9)
}
