package texture

import "strings"

// File is one texture file found in a scanned folder.
type File struct {
	Path string
	Name string // file name with extension
}

// Asset is a texture file considered for one model.
type Asset struct {
	Path       string `json:"path"`
	Name       string `json:"name"`
	Base       string `json:"base"`
	Normalized string `json:"normalized"`
	Owner      string `json:"owner"`
	Role       Role   `json:"role"`
}

type suffixRule struct {
	role     Role
	suffixes []string
}

// rules are applied in order and a later match overwrites an earlier one.
var rules = []suffixRule{
	{BaseColor, []string{"diffuse", "albedo", "base_color", "basecolor"}},
	{AO, []string{"ao", "ambient_occlusion"}},
	{Metallic, []string{"metallic"}},
	{Normal, []string{"normal"}},
	{Roughness, []string{"roughness"}},
}

// RoleOf classifies a texture base name by its suffix.
func RoleOf(base string) Role {
	stem := suffixStem(base)
	role := Unclassified
	for _, r := range rules {
		for _, s := range r.suffixes {
			if strings.HasSuffix(stem, s) {
				role = r.role
				break
			}
		}
	}
	return role
}

// Claims reports whether a texture base name belongs to the model by the
// normalized prefix test.
func Claims(model, base string) bool {
	return strings.HasPrefix(Normalize(StripMatToken(base)), Normalize(model))
}

// Candidates returns every texture in files claimed by model, in file order,
// with its role assigned. Unclassified textures are included.
func Candidates(model string, files []File) []Asset {
	var out []Asset
	for _, f := range files {
		if !IsTexture(f.Name) {
			continue
		}
		base := BaseName(f.Name)
		if !Claims(model, base) {
			continue
		}
		out = append(out, Asset{
			Path:       f.Path,
			Name:       f.Name,
			Base:       base,
			Normalized: Normalize(StripMatToken(base)),
			Owner:      model,
			Role:       RoleOf(base),
		})
	}
	return out
}

// Classify maps each role to the texture that fills it for model. When two
// files land on the same role the later one in files wins. Unclassified
// textures are left out.
func Classify(model string, files []File) map[Role]Asset {
	out := make(map[Role]Asset)
	for _, a := range Candidates(model, files) {
		if a.Role == Unclassified {
			continue
		}
		out[a.Role] = a
	}
	return out
}
