package part

// HasPhysics reports whether the part has full physical significance.
func HasPhysics(p MassSource) (bool, error) {
	switch s := p.PhysicalSignificance(); s {
	case SignificanceFull:
		return true, nil
	case SignificanceNone:
		return false, nil
	default:
		return false, &UnknownSignificanceError{Value: s}
	}
}

// mustHavePhysics panics on an unknown significance. There is no safe
// default: a new value means the host's contract changed.
func mustHavePhysics(p MassSource) bool {
	ok, err := HasPhysics(p)
	if err != nil {
		panic(err)
	}
	return ok
}

// CalculateCurrentMass returns the rigid-body mass, or 0 for physics-less
// parts and parts whose rigid body does not exist yet.
//
// Panics with *UnknownSignificanceError if the significance is not known.
func CalculateCurrentMass(p MassSource) float32 {
	if !mustHavePhysics(p) {
		return 0
	}
	if m, ok := p.RigidBodyMass(); ok {
		return m
	}
	return 0
}

// DryMass is the current mass minus the resources currently held.
// Physics-less parts holding resources come out negative; this is left as is.
func DryMass(p MassSource) float32 {
	return CalculateCurrentMass(p) - p.ResourceMass()
}

// WetMass is the dry mass plus every resource slot filled to capacity.
func WetMass(p MassSource) float32 {
	mass := DryMass(p)
	for _, r := range p.Resources() {
		mass += r.CapacityMass()
	}
	return mass
}

// CurrentResourceMass sums amount × density over the slots. Hosts that do not
// track a resource mass total can use it for ResourceMass.
func CurrentResourceMass(resources []Resource) float32 {
	var total float32
	for _, r := range resources {
		total += r.Mass()
	}
	return total
}

// CapacityResourceMass sums maxAmount × density over the slots.
func CapacityResourceMass(resources []Resource) float32 {
	var total float32
	for _, r := range resources {
		total += r.CapacityMass()
	}
	return total
}
