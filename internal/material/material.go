package material

// BlendMethod controls how the surface is composited. Imported materials
// are always opaque.
type BlendMethod string

const BlendOpaque BlendMethod = "OPAQUE"

// Material owns exactly one node graph.
type Material struct {
	Name        string
	BlendMethod BlendMethod
	Graph       *Graph
}

func New(name string) *Material {
	return &Material{Name: name, BlendMethod: BlendOpaque, Graph: NewGraph()}
}
