package texture

import "fmt"

// Role is the rendering input a texture feeds.
type Role int

const (
	Unclassified Role = iota
	BaseColor
	AO
	Metallic
	Normal
	Roughness
)

// Roles lists the classified roles in rule declaration order.
var Roles = []Role{BaseColor, AO, Metallic, Normal, Roughness}

func (r Role) String() string {
	switch r {
	case Unclassified:
		return "unclassified"
	case BaseColor:
		return "base_color"
	case AO:
		return "ao"
	case Metallic:
		return "metallic"
	case Normal:
		return "normal"
	case Roughness:
		return "roughness"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// NonColor reports whether images in this role hold data rather than color
// and must be sampled without color management.
func (r Role) NonColor() bool {
	switch r {
	case BaseColor, Unclassified:
		return false
	case AO, Metallic, Normal, Roughness:
		return true
	}
	return true
}

// MarshalText encodes the role by name so manifests stay readable.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
