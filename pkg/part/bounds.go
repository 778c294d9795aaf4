package part

import (
	"go.uber.org/zap"

	"github.com/Faultbox/partgeom/pkg/math"
)

var log = zap.NewNop()

// SetLogger sets the logger used for debug tracing. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}

// facingRotation takes mesh forward (+Z) onto part facing forward (+Y).
var facingRotation = math.QuatFromToRotation(math.Vec3Forward, math.Vec3Up)

// FacingRotation returns the fixed rotation from the part's own axes to its
// facing convention.
func FacingRotation() math.Quat {
	return facingRotation
}

// PartBounds returns the union of every mesh's bounds, expressed in the part's
// facing frame. Each mesh box goes through its true transform corner by corner,
// since mesh transforms may carry their own rotation and non-uniform scale.
//
// A part without meshes yields the zero Bounds.
func PartBounds(p BoundsSource) math.Bounds {
	worldToPart := p.LocalToWorld().Inverse()

	var union math.BoundsUnion
	for _, mesh := range p.Meshes() {
		for _, corner := range mesh.Bounds.Corners() {
			world := mesh.LocalToWorld.TransformVec3(corner)
			local := worldToPart.TransformVec3(world)
			union.Add(facingRotation.Rotate(local))
		}
		if ce := log.Check(zap.DebugLevel, "mesh bounds added"); ce != nil {
			b := union.Bounds()
			ce.Write(
				zap.String("mesh", mesh.Name),
				zap.Float32s("min", vec(b.Min())),
				zap.Float32s("max", vec(b.Max())),
			)
		}
	}
	return union.Bounds()
}

func vec(v math.Vec3) []float32 {
	return []float32{v.X, v.Y, v.Z}
}
