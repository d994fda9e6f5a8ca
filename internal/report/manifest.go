// Package report writes the outcome of a scan as a JSON manifest.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"obj-setup/internal/mathutil"
	"obj-setup/internal/objfile"
	"obj-setup/internal/pipeline"
	"obj-setup/internal/scanner"
	"obj-setup/internal/texture"
)

// ManifestEntry describes one model after ScanAndImport.
type ManifestEntry struct {
	Name           string            `json:"name"`
	Source         string            `json:"source"`
	AlreadyPresent bool              `json:"already_present"`
	Material       string            `json:"material"`
	Location       mathutil.Vec3     `json:"location"`
	Textures       map[string]string `json:"textures"`
	Unclassified   []string          `json:"unclassified,omitempty"`
	Nodes          int               `json:"nodes"`
	Links          int               `json:"links"`
	Blend          string            `json:"blend"`
	Geometry       *objfile.Stats    `json:"geometry,omitempty"`
}

// Manifest is the document written to disk.
type Manifest struct {
	Dir      string           `json:"dir"`
	Imported int              `json:"imported"`
	Models   []ManifestEntry  `json:"models"`
	Notices  []scanner.Notice `json:"notices,omitempty"`
}

// Build turns a pipeline result into a manifest. Models are sorted by name.
func Build(res *pipeline.Result) Manifest {
	m := Manifest{Dir: res.Dir, Imported: res.Imported, Notices: res.Notices}
	for _, mr := range res.Models {
		e := ManifestEntry{
			Name:           mr.Asset.Name,
			Source:         mr.Asset.Path,
			AlreadyPresent: mr.Asset.AlreadyPresent,
			Geometry:       mr.Asset.Geometry,
			Textures:       make(map[string]string, len(mr.Images)),
		}
		if mr.Asset.Object != nil {
			e.Location = mr.Asset.Object.Location()
		}
		if mr.Asset.Material != nil {
			e.Material = mr.Asset.Material.Name
			e.Blend = string(mr.Asset.Material.BlendMethod)
		}
		for role, a := range mr.Images {
			e.Textures[role.String()] = a.Path
		}
		for _, c := range mr.Candidates {
			if c.Role == texture.Unclassified {
				e.Unclassified = append(e.Unclassified, c.Path)
			}
		}
		if mr.Graph != nil {
			e.Nodes = len(mr.Graph.Nodes())
			e.Links = len(mr.Graph.Links())
		}
		m.Models = append(m.Models, e)
	}
	sort.Slice(m.Models, func(i, j int) bool { return m.Models[i].Name < m.Models[j].Name })
	return m
}

// WriteManifest writes the manifest for res to path.
func WriteManifest(path string, res *pipeline.Result) error {
	data, err := json.MarshalIndent(Build(res), "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
