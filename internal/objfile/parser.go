package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"obj-setup/internal/mathutil"
)

// ErrNoVertices is returned for files that contain no vertex positions.
var ErrNoVertices = errors.New("objfile: no vertices")

// Parse reads an OBJ file from disk.
func Parse(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: %s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Decode parses OBJ text. Only the statements needed for placement and
// material naming are interpreted; others are recorded as warnings.
func Decode(r io.Reader) (*Data, error) {
	p := &parser{d: &Data{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.parseLine(sc.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(p.d.Verts) == 0 {
		return nil, ErrNoVertices
	}
	return p.d, nil
}

type parser struct {
	d    *Data
	cur  *Group
	line int
}

func (p *parser) parseLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	args := fields[1:]
	switch fields[0] {
	case "v":
		v, err := parseVec3(args)
		if err != nil {
			return err
		}
		p.d.Verts = append(p.d.Verts, v)
	case "vn":
		v, err := parseVec3(args)
		if err != nil {
			return err
		}
		p.d.Normals = append(p.d.Normals, v)
	case "vt":
		if len(args) < 1 {
			return fmt.Errorf("vt: expected at least 1 value")
		}
		var uv [2]float64
		for i := 0; i < len(args) && i < 2; i++ {
			f, err := strconv.ParseFloat(args[i], 64)
			if err != nil {
				return fmt.Errorf("vt: %w", err)
			}
			uv[i] = f
		}
		p.d.UVs = append(p.d.UVs, uv)
	case "o", "g":
		name := strings.Join(args, " ")
		p.d.Groups = append(p.d.Groups, Group{Name: name})
		p.cur = &p.d.Groups[len(p.d.Groups)-1]
	case "usemtl":
		if len(args) == 0 {
			return fmt.Errorf("usemtl: missing name")
		}
		g := p.group()
		name := strings.Join(args, " ")
		for _, m := range g.Materials {
			if m == name {
				return nil
			}
		}
		g.Materials = append(g.Materials, name)
	case "mtllib":
		p.d.MtlLibs = append(p.d.MtlLibs, args...)
	case "f":
		if len(args) < 3 {
			return fmt.Errorf("f: face needs at least 3 vertices, got %d", len(args))
		}
		p.group().Faces++
	case "s", "l", "p":
	default:
		p.d.Warnings = append(p.d.Warnings, fmt.Sprintf("line %d: unsupported statement %q", p.line, fields[0]))
	}
	return nil
}

// group returns the current group, opening an unnamed one if the file has
// geometry before any `o`/`g` statement.
func (p *parser) group() *Group {
	if p.cur == nil {
		p.d.Groups = append(p.d.Groups, Group{})
		p.cur = &p.d.Groups[len(p.d.Groups)-1]
	}
	return p.cur
}

func parseVec3(args []string) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	if len(args) < 3 {
		return v, fmt.Errorf("expected 3 values, got %d", len(args))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
