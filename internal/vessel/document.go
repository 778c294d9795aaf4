package vessel

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/partgeom/pkg/math"
	"github.com/Faultbox/partgeom/pkg/part"
)

// Document is the YAML layout of a vessel snapshot.
type Document struct {
	Name      string    `yaml:"name"`
	Transform Transform `yaml:"transform"` // vessel to world
	Parts     []PartDoc `yaml:"parts"`
}

// PartDoc describes one part.
type PartDoc struct {
	Name          string        `yaml:"name"`
	Physics       Significance  `yaml:"physics"`
	RigidBodyMass *float32      `yaml:"rigid_body_mass"` // nil: no rigid body
	ResourceMass  *float32      `yaml:"resource_mass"`   // nil: sum of amount × density
	Transform     Transform     `yaml:"transform"`       // part in vessel frame
	Nodes         []NodeDoc     `yaml:"nodes"`
	Meshes        []MeshDoc     `yaml:"meshes"`
	Resources     []ResourceDoc `yaml:"resources"`
}

// NodeDoc is a transform node in a part's visual hierarchy.
type NodeDoc struct {
	Name      string    `yaml:"name"`
	Parent    string    `yaml:"parent"` // empty: child of the part root
	Transform Transform `yaml:"transform"`
}

// MeshDoc is a mesh attached to a node (or the part root when Node is empty).
type MeshDoc struct {
	Name      string    `yaml:"name"`
	Node      string    `yaml:"node"`
	Transform Transform `yaml:"transform"`
	Bounds    BoundsDoc `yaml:"bounds"`
}

// BoundsDoc is a mesh-local box.
type BoundsDoc struct {
	Center  [3]float32 `yaml:"center"`
	Extents [3]float32 `yaml:"extents"`
}

// ResourceDoc is one resource slot.
type ResourceDoc struct {
	Name      string  `yaml:"name"`
	Amount    float64 `yaml:"amount"`
	MaxAmount float64 `yaml:"max_amount"`
	Density   float32 `yaml:"density"`
}

// Transform is position, rotation (x, y, z, w quaternion) and scale.
// Omitted rotation is identity and omitted scale is (1, 1, 1).
type Transform struct {
	Position [3]float32  `yaml:"position"`
	Rotation *[4]float32 `yaml:"rotation,omitempty"`
	Scale    *[3]float32 `yaml:"scale,omitempty"`
}

// Matrix returns the transform as Translate * Rotate * Scale.
func (t Transform) Matrix() math.Mat4 {
	rot := math.QuatIdentity()
	if t.Rotation != nil {
		r := *t.Rotation
		rot = math.Quat{X: r[0], Y: r[1], Z: r[2], W: r[3]}.Normalize()
	}
	scale := math.Vec3{X: 1, Y: 1, Z: 1}
	if t.Scale != nil {
		scale = math.Vec3FromArray(*t.Scale)
	}
	return math.TRS(math.Vec3FromArray(t.Position), rot, scale)
}

// Significance is a part.PhysicalSignificance read from "full" or "none".
// An omitted value means full.
type Significance part.PhysicalSignificance

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Significance) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	ps, err := part.ParsePhysicalSignificance(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = Significance(ps)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Significance) MarshalYAML() (interface{}, error) {
	return part.PhysicalSignificance(s).String(), nil
}
