// Package vessel loads vessel snapshots from YAML and exposes their parts
// through the part package's interfaces.
package vessel

import (
	"errors"
	"slices"

	"github.com/Faultbox/partgeom/pkg/math"
	"github.com/Faultbox/partgeom/pkg/part"
)

// Errors returned by Load and Decode.
var (
	ErrDuplicatePart           = errors.New("duplicate part name")
	ErrDuplicateNode           = errors.New("duplicate node name")
	ErrUnknownParent           = errors.New("unknown parent node")
	ErrNodeCycle               = errors.New("node hierarchy cycle")
	ErrUnknownMeshNode         = errors.New("mesh refers to unknown node")
	ErrInvalidResource         = errors.New("invalid resource")
	ErrRigidBodyWithoutPhysics = errors.New("rigid body on a physics-less part")
)

// Vessel is an immutable snapshot of a vessel's parts.
type Vessel struct {
	name  string
	parts []*Part
	index map[string]int
}

// Name returns the vessel name.
func (v *Vessel) Name() string { return v.name }

// Parts returns the parts in file order.
func (v *Vessel) Parts() []*Part { return slices.Clone(v.parts) }

// Len returns the number of parts.
func (v *Vessel) Len() int { return len(v.parts) }

// Find looks up a part by name.
func (v *Vessel) Find(name string) (*Part, bool) {
	i, ok := v.index[name]
	if !ok {
		return nil, false
	}
	return v.parts[i], true
}

// Part is one part of a loaded vessel. It implements part.Part.
type Part struct {
	name         string
	significance part.PhysicalSignificance
	rbMass       float32
	hasRB        bool
	resourceMass float32
	resources    []part.Resource
	localToWorld math.Mat4
	meshes       []part.Mesh
}

var _ part.Part = (*Part)(nil)

func (p *Part) Name() string { return p.name }

func (p *Part) PhysicalSignificance() part.PhysicalSignificance { return p.significance }

func (p *Part) RigidBodyMass() (float32, bool) { return p.rbMass, p.hasRB }

func (p *Part) ResourceMass() float32 { return p.resourceMass }

func (p *Part) Resources() []part.Resource { return slices.Clone(p.resources) }

func (p *Part) LocalToWorld() math.Mat4 { return p.localToWorld }

func (p *Part) Meshes() []part.Mesh { return slices.Clone(p.meshes) }
