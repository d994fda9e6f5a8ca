package objfile

import "obj-setup/internal/mathutil"

// Group is one `o`/`g` section of an OBJ file.
type Group struct {
	Name      string
	Materials []string // usemtl names in first-use order
	Faces     int
}

// Data holds the parsed geometry for one OBJ file. Vertex positions and
// normals are shared by all groups, as in the file itself.
type Data struct {
	Path     string
	Verts    []mathutil.Vec3
	Normals  []mathutil.Vec3
	UVs      [][2]float64
	Groups   []Group
	MtlLibs  []string
	Warnings []string
}

// FirstMaterial returns the first material referenced by any group, or "".
func (d *Data) FirstMaterial() string {
	for _, g := range d.Groups {
		if len(g.Materials) > 0 {
			return g.Materials[0]
		}
	}
	return ""
}

// Stats summarizes what an OBJ file contained.
type Stats struct {
	Vertices int      `json:"vertices"`
	Normals  int      `json:"normals"`
	UVs      int      `json:"uvs"`
	Faces    int      `json:"faces"`
	Groups   []string `json:"groups,omitempty"`
	MtlLibs  []string `json:"mtllibs,omitempty"`
}

func (d *Data) Stats() Stats {
	s := Stats{
		Vertices: len(d.Verts),
		Normals:  len(d.Normals),
		UVs:      len(d.UVs),
		MtlLibs:  d.MtlLibs,
	}
	for _, g := range d.Groups {
		s.Faces += g.Faces
		if g.Name != "" {
			s.Groups = append(s.Groups, g.Name)
		}
	}
	return s
}
