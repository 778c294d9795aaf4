// Package part computes mass and facing-frame bounds for vessel parts.
//
// The functions here read part state through small capability interfaces so
// they stay independent of whatever owns the parts. Nothing is cached and
// nothing is mutated.
package part

import (
	"fmt"
	"strings"

	"github.com/Faultbox/partgeom/pkg/math"
)

// PhysicalSignificance says whether a part is simulated as its own rigid body.
type PhysicalSignificance int

const (
	// SignificanceFull parts have their own rigid body.
	SignificanceFull PhysicalSignificance = iota
	// SignificanceNone parts are merged into their parent's physics.
	SignificanceNone
)

var significanceNames = map[PhysicalSignificance]string{
	SignificanceFull: "full",
	SignificanceNone: "none",
}

func (s PhysicalSignificance) String() string {
	if name, ok := significanceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("PhysicalSignificance(%d)", int(s))
}

// ParsePhysicalSignificance accepts "full" or "none", case-insensitively.
func ParsePhysicalSignificance(s string) (PhysicalSignificance, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return SignificanceFull, nil
	case "none":
		return SignificanceNone, nil
	}
	return 0, &UnknownSignificanceError{Raw: s}
}

// UnknownSignificanceError reports a physics significance outside {full, none}.
type UnknownSignificanceError struct {
	Value PhysicalSignificance
	Raw   string // set when the value came from text
}

func (e *UnknownSignificanceError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("unknown part physics type: %q", e.Raw)
	}
	return fmt.Sprintf("unknown part physics type: %v", e.Value)
}

// Resource is one resource slot on a part.
type Resource struct {
	Name      string
	Amount    float64
	MaxAmount float64
	Density   float32 // mass per unit
}

// Mass returns the mass of the current amount.
func (r Resource) Mass() float32 {
	return float32(r.Amount) * r.Density
}

// CapacityMass returns the mass of a full slot.
func (r Resource) CapacityMass() float32 {
	return float32(r.MaxAmount) * r.Density
}

// MassSource is the read-only view the mass accessors need.
type MassSource interface {
	PhysicalSignificance() PhysicalSignificance
	// RigidBodyMass returns the rigid body's mass and whether a rigid body
	// exists. The value lags the simulation by one physics step.
	RigidBodyMass() (float32, bool)
	// ResourceMass is the total mass of resources currently held.
	ResourceMass() float32
	// Resources returns the resource slots in index order.
	Resources() []Resource
}

// Mesh is one mesh component in a part's visual hierarchy.
type Mesh struct {
	Name         string
	Bounds       math.Bounds // in the mesh's local space
	LocalToWorld math.Mat4
}

// BoundsSource is the read-only view PartBounds needs.
type BoundsSource interface {
	// LocalToWorld maps the part's own space to world space.
	LocalToWorld() math.Mat4
	// Meshes returns every mesh in the part's hierarchy, nested ones included.
	Meshes() []Mesh
}

// Part is everything this package reads from a part.
type Part interface {
	Name() string
	MassSource
	BoundsSource
}
