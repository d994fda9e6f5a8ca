package scene

import (
	"errors"
	"fmt"
	"sort"

	"obj-setup/internal/material"
)

// ErrExists is returned when adding an object whose name is taken.
var ErrExists = errors.New("scene: object already exists")

// Scene is the registry of objects and materials a pipeline run works on.
// It is passed explicitly to every operation and assumes a single writer.
type Scene struct {
	objects   map[string]*Object
	order     []*Object
	materials map[string]*material.Material
}

func New() *Scene {
	return &Scene{
		objects:   make(map[string]*Object),
		materials: make(map[string]*material.Material),
	}
}

// Add registers an object under its name.
func (s *Scene) Add(o *Object) error {
	if _, ok := s.objects[o.Name]; ok {
		return fmt.Errorf("%w: %s", ErrExists, o.Name)
	}
	s.objects[o.Name] = o
	s.order = append(s.order, o)
	for _, m := range o.Materials {
		s.RenameMaterial(m, m.Name)
	}
	return nil
}

// Lookup returns the object with the given name.
func (s *Scene) Lookup(name string) (*Object, bool) {
	o, ok := s.objects[name]
	return o, ok
}

// Objects returns all objects in insertion order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.order))
	copy(out, s.order)
	return out
}

// Imported returns the pipeline-managed objects in insertion order.
func (s *Scene) Imported() []*Object {
	var out []*Object
	for _, o := range s.order {
		if o.Imported {
			out = append(out, o)
		}
	}
	return out
}

// ByName returns objs sorted by name, leaving objs untouched.
func ByName(objs []*Object) []*Object {
	out := make([]*Object, len(objs))
	copy(out, objs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Material returns the registered material with the given name.
func (s *Scene) Material(name string) (*material.Material, bool) {
	m, ok := s.materials[name]
	return m, ok
}

// RenameMaterial changes a material's name and keeps the registry in step.
// If another material holds the name, the new name gets a numeric suffix.
func (s *Scene) RenameMaterial(m *material.Material, name string) string {
	if cur, ok := s.materials[m.Name]; ok && cur == m {
		delete(s.materials, m.Name)
	}
	final := name
	for i := 1; ; i++ {
		cur, taken := s.materials[final]
		if !taken || cur == m {
			break
		}
		final = fmt.Sprintf("%s.%03d", name, i)
	}
	m.Name = final
	s.materials[final] = m
	return final
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.order)
}
