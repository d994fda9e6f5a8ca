package material

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"obj-setup/internal/texture"
)

var (
	// ErrSocketTaken is returned when an input socket already has a link.
	ErrSocketTaken = errors.New("material: input socket already linked")
	// ErrBadSocket is returned for a socket the node kind does not have.
	ErrBadSocket = errors.New("material: no such socket")
	// ErrCycle is returned when a link would close a cycle.
	ErrCycle = errors.New("material: link would create a cycle")
	// ErrForeignNode is returned when a node belongs to another graph.
	ErrForeignNode = errors.New("material: node not in graph")
)

// NodeKind is the closed set of node types a material graph can hold.
type NodeKind int

const (
	KindImageSource NodeKind = iota
	KindShadingSurface
	KindOutput
	KindHeightBump
	KindNormalMap
	KindMultiplyBlend
)

func (k NodeKind) String() string {
	switch k {
	case KindImageSource:
		return "image_source"
	case KindShadingSurface:
		return "shading_surface"
	case KindOutput:
		return "output"
	case KindHeightBump:
		return "height_bump"
	case KindNormalMap:
		return "normal_map"
	case KindMultiplyBlend:
		return "multiply_blend"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Socket names a node input or output.
type Socket string

const (
	SocketColor     Socket = "Color"
	SocketBSDF      Socket = "BSDF"
	SocketSurface   Socket = "Surface"
	SocketBaseColor Socket = "Base Color"
	SocketMetallic  Socket = "Metallic"
	SocketRoughness Socket = "Roughness"
	SocketNormal    Socket = "Normal"
	SocketFac       Socket = "Fac"
	SocketColor1    Socket = "Color1"
	SocketColor2    Socket = "Color2"
	SocketHeight    Socket = "Height"
	SocketStrength  Socket = "Strength"
)

func inputs(k NodeKind) []Socket {
	switch k {
	case KindImageSource:
		return nil
	case KindShadingSurface:
		return []Socket{SocketBaseColor, SocketMetallic, SocketRoughness, SocketNormal}
	case KindOutput:
		return []Socket{SocketSurface}
	case KindHeightBump:
		return []Socket{SocketStrength, SocketHeight}
	case KindNormalMap:
		return []Socket{SocketStrength, SocketColor}
	case KindMultiplyBlend:
		return []Socket{SocketFac, SocketColor1, SocketColor2}
	}
	return nil
}

func outputs(k NodeKind) []Socket {
	switch k {
	case KindImageSource, KindMultiplyBlend:
		return []Socket{SocketColor}
	case KindShadingSurface:
		return []Socket{SocketBSDF}
	case KindOutput:
		return nil
	case KindHeightBump, KindNormalMap:
		return []Socket{SocketNormal}
	}
	return nil
}

func hasSocket(list []Socket, s Socket) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// NodeID identifies a node within its graph.
type NodeID string

// Node is one shading node. Only the fields relevant to its Kind are set.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Location [2]float64

	// ImageSource
	Image    *texture.Image
	Role     texture.Role
	NonColor bool

	// MultiplyBlend
	Factor float64

	// HeightBump, NormalMap
	Strength float64
}

// Link connects an output socket to an input socket.
type Link struct {
	From       NodeID
	FromSocket Socket
	To         NodeID
	ToSocket   Socket
}

type inputKey struct {
	node   NodeID
	socket Socket
}

// Graph is a directed acyclic graph of shading nodes. Each input socket
// accepts at most one link.
type Graph struct {
	nodes  map[NodeID]*Node
	order  []NodeID
	links  []Link
	inputs map[inputKey]int
}

func NewGraph() *Graph {
	return &Graph{
		nodes:  make(map[NodeID]*Node),
		inputs: make(map[inputKey]int),
	}
}

// Clear drops every node and link.
func (g *Graph) Clear() {
	g.nodes = make(map[NodeID]*Node)
	g.order = nil
	g.links = nil
	g.inputs = make(map[inputKey]int)
}

// Add creates a node of the given kind at loc.
func (g *Graph) Add(kind NodeKind, loc [2]float64) *Node {
	n := &Node{ID: NodeID(uuid.NewString()), Kind: kind, Location: loc}
	g.nodes[n.ID] = n
	g.order = append(g.order, n.ID)
	return n
}

// Connect links from.out to to.in.
func (g *Graph) Connect(from *Node, out Socket, to *Node, in Socket) error {
	if g.nodes[from.ID] != from || g.nodes[to.ID] != to {
		return ErrForeignNode
	}
	if !hasSocket(outputs(from.Kind), out) {
		return fmt.Errorf("%w: %s has no output %q", ErrBadSocket, from.Kind, out)
	}
	if !hasSocket(inputs(to.Kind), in) {
		return fmt.Errorf("%w: %s has no input %q", ErrBadSocket, to.Kind, in)
	}
	key := inputKey{to.ID, in}
	if _, taken := g.inputs[key]; taken {
		return fmt.Errorf("%w: %s.%s", ErrSocketTaken, to.Kind, in)
	}
	if from.ID == to.ID || g.reaches(to.ID, from.ID) {
		return ErrCycle
	}
	g.inputs[key] = len(g.links)
	g.links = append(g.links, Link{From: from.ID, FromSocket: out, To: to.ID, ToSocket: in})
	return nil
}

// reaches reports whether dst is downstream of src.
func (g *Graph) reaches(src, dst NodeID) bool {
	seen := map[NodeID]bool{src: true}
	stack := []NodeID{src}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, l := range g.links {
			if l.From != cur || seen[l.To] {
				continue
			}
			if l.To == dst {
				return true
			}
			seen[l.To] = true
			stack = append(stack, l.To)
		}
	}
	return false
}

// Nodes returns the nodes in creation order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	for i, id := range g.order {
		out[i] = g.nodes[id]
	}
	return out
}

// Links returns the links in creation order.
func (g *Graph) Links() []Link {
	return g.links
}

// Find returns the nodes of a kind in creation order.
func (g *Graph) Find(kind NodeKind) []*Node {
	var out []*Node
	for _, id := range g.order {
		if n := g.nodes[id]; n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Count returns the number of nodes of a kind.
func (g *Graph) Count(kind NodeKind) int {
	return len(g.Find(kind))
}

// Source returns the node feeding to.in, if any.
func (g *Graph) Source(to *Node, in Socket) (*Node, bool) {
	i, ok := g.inputs[inputKey{to.ID, in}]
	if !ok {
		return nil, false
	}
	return g.nodes[g.links[i].From], true
}

// Validate checks the structural invariants: exactly one output and one
// shading surface node, single-link inputs, and no cycles.
func (g *Graph) Validate() error {
	if n := g.Count(KindOutput); n != 1 {
		return fmt.Errorf("material: graph has %d output nodes, want 1", n)
	}
	if n := g.Count(KindShadingSurface); n != 1 {
		return fmt.Errorf("material: graph has %d shading surface nodes, want 1", n)
	}

	indeg := make(map[NodeID]int, len(g.nodes))
	seen := make(map[inputKey]bool, len(g.links))
	for _, l := range g.links {
		k := inputKey{l.To, l.ToSocket}
		if seen[k] {
			return fmt.Errorf("%w: %s", ErrSocketTaken, l.ToSocket)
		}
		seen[k] = true
		indeg[l.To]++
	}

	var queue []NodeID
	for _, id := range g.order {
		if indeg[id] == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, l := range g.links {
			if l.From != id {
				continue
			}
			indeg[l.To]--
			if indeg[l.To] == 0 {
				queue = append(queue, l.To)
			}
		}
	}
	if visited != len(g.nodes) {
		return ErrCycle
	}
	return nil
}
