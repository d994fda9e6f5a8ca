package texture

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func files(names ...string) []File {
	out := make([]File, len(names))
	for i, n := range names {
		out[i] = File{Path: "/tex/" + n, Name: n}
	}
	return out
}

func TestClassifyByPrefix(t *testing.T) {
	got := Classify("Rock", files(
		"Rock_BaseColor.png",
		"Rock_AO.jpg",
		"Rock_Metallic01Mat2.png",
		"Wood_Normal.png",
	))

	assert.Len(t, got, 3)
	assert.Equal(t, "Rock_BaseColor.png", got[BaseColor].Name)
	assert.Equal(t, "Rock_AO.jpg", got[AO].Name)
	assert.Equal(t, "Rock_Metallic01Mat2.png", got[Metallic].Name)
	assert.NotContains(t, got, Normal)
}

func TestRoleOf(t *testing.T) {
	cases := map[string]Role{
		"RockAlbedoAO":            AO,
		"Rock_Albedo":             BaseColor,
		"rock_diffuse":            BaseColor,
		"Rock_base_color":         BaseColor,
		"Rock_BASECOLOR":          BaseColor,
		"Rock_Ambient_Occlusion":  AO,
		"Rock_Metallic":           Metallic,
		"Rock_Normal":             Normal,
		"Rock_Roughness":          Roughness,
		"Rock_Roughness_Mat1":     Roughness,
		"Rock_Normal02":           Normal,
		"Rock_Specular":           Unclassified,
		"Rock":                    Unclassified,
		"Rock_NormalAlbedo":       BaseColor,
		"Rock_AlbedoRoughness":    Roughness,
		"Rock_MetallicRoughness":  Roughness,
		"Rock_Albedo_Mat12":       BaseColor,
		"Rock_Metallic01Mat2":     Metallic,
		"Rock_ambient_occlusion1": AO,
	}
	for base, want := range cases {
		assert.Equal(t, want, RoleOf(base), base)
	}
}

func TestCandidatesKeepsUnclassified(t *testing.T) {
	got := Candidates("Rock", files("Rock_Specular.png", "Rock_Normal.tga", "Rock.obj", "Rock_Notes.txt"))
	if assert.Len(t, got, 2) {
		assert.Equal(t, Unclassified, got[0].Role)
		assert.Equal(t, "rockspecular", got[0].Normalized)
		assert.Equal(t, "Rock", got[0].Owner)
		assert.Equal(t, Normal, got[1].Role)
	}
}

func TestClassifyNormalizesModelName(t *testing.T) {
	got := Classify("Old_Rock", files("oldrock_roughness.PNG", "OLD_ROCK_normal.exr"))
	assert.Equal(t, "oldrock_roughness.PNG", got[Roughness].Name)
	assert.Equal(t, "OLD_ROCK_normal.exr", got[Normal].Name)
}

func TestClassifyLaterFileWinsRole(t *testing.T) {
	got := Classify("Rock", files("Rock_Albedo.png", "Rock_Diffuse.png"))
	assert.Equal(t, "Rock_Diffuse.png", got[BaseColor].Name)
}

func TestClassifySharedPrefixAmbiguity(t *testing.T) {
	fs := files("Rock01_AO.png")
	assert.Contains(t, Classify("Rock", fs), AO)
	assert.Contains(t, Classify("Rock01", fs), AO)
}

func TestClassifyDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	pool := []string{
		"Rock_AO.png", "Rock_Albedo.jpg", "Rock_Normal.tga", "Rock01_Roughness.png",
		"rock_metallicMat3.png", "Wood_Diffuse.png", "RockAlbedoAO.png", "Rock_Height.exr",
		"Rock.obj", "Rock_Normal.txt",
	}
	pick := func(idx []int) []File {
		fs := make([]File, len(idx))
		for i, n := range idx {
			fs[i] = File{Path: "/t/" + pool[n], Name: pool[n]}
		}
		return fs
	}
	name := gen.IntRange(0, len(pool)-1)

	properties.Property("repeated classification is identical", prop.ForAll(
		func(idx []int) bool {
			fs := pick(idx)
			return reflect.DeepEqual(Classify("Rock", fs), Classify("Rock", fs))
		},
		gen.SliceOf(name),
	))

	properties.Property("every classified texture passes the prefix test", prop.ForAll(
		func(idx []int) bool {
			fs := pick(idx)
			for role, a := range Classify("Rock", fs) {
				if role == Unclassified || a.Role != role || !Claims("Rock", a.Base) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(name),
	))

	properties.TestingRun(t)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Rock_AO", BaseName("/a/b/Rock_AO.final.png"))
	assert.Equal(t, "png", Ext("x/Rock_AO.final.PNG"))
	assert.True(t, IsTexture("a.JPEG"))
	assert.False(t, IsTexture("a.obj"))
	assert.Equal(t, "Rock_Metallic01", StripMatToken("Rock_Metallic01Mat2"))
	assert.Equal(t, "Matte_Rock", StripMatToken("Matte_Rock"))
	assert.Equal(t, "rockao", Normalize("Rock_AO"))
}
