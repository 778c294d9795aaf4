package math

// Bounds is an axis-aligned box stored as center and half-extents.
// The zero value is a degenerate box at the origin.
type Bounds struct {
	Center  Vec3
	Extents Vec3
}

// BoundsFromMinMax builds a box spanning min..max.
func BoundsFromMinMax(lo, hi Vec3) Bounds {
	return Bounds{
		Center:  lo.Add(hi).Scale(0.5),
		Extents: hi.Sub(lo).Scale(0.5),
	}
}

// Min returns the lowest corner.
func (b Bounds) Min() Vec3 {
	return b.Center.Sub(b.Extents)
}

// Max returns the highest corner.
func (b Bounds) Max() Vec3 {
	return b.Center.Add(b.Extents)
}

// Size returns the full edge lengths.
func (b Bounds) Size() Vec3 {
	return b.Extents.Scale(2)
}

// Encapsulate returns the smallest box containing both b and p.
func (b Bounds) Encapsulate(p Vec3) Bounds {
	return BoundsFromMinMax(b.Min().Min(p), b.Max().Max(p))
}

// Corners returns the 8 corners of the box, X sign varying slowest.
func (b Bounds) Corners() [8]Vec3 {
	var out [8]Vec3
	i := 0
	for sx := float32(-1); sx <= 1; sx += 2 {
		for sy := float32(-1); sy <= 1; sy += 2 {
			for sz := float32(-1); sz <= 1; sz += 2 {
				out[i] = b.Center.Add(Vec3{sx * b.Extents.X, sy * b.Extents.Y, sz * b.Extents.Z})
				i++
			}
		}
	}
	return out
}

// BoundsUnion grows a box one point at a time. Unlike Bounds.Encapsulate it
// has no center until the first point is added, so the origin is not
// implicitly part of the result.
type BoundsUnion struct {
	lo, hi Vec3
	n      int
}

// Add grows the union to include p.
func (u *BoundsUnion) Add(p Vec3) {
	if u.n == 0 {
		u.lo, u.hi = p, p
	} else {
		u.lo = u.lo.Min(p)
		u.hi = u.hi.Max(p)
	}
	u.n++
}

// Len returns how many points were added.
func (u *BoundsUnion) Len() int {
	return u.n
}

// Bounds returns the union, or the zero Bounds if nothing was added.
func (u *BoundsUnion) Bounds() Bounds {
	if u.n == 0 {
		return Bounds{}
	}
	return BoundsFromMinMax(u.lo, u.hi)
}

// WireframeVertexCount is the number of vertices returned by Wireframe (12 edges × 2).
const WireframeVertexCount = 24

// Wireframe returns line-list vertices for the box edges, two per edge.
func (b Bounds) Wireframe() [WireframeVertexCount]Vec3 {
	lo, hi := b.Min(), b.Max()
	c := func(x, y, z float32) Vec3 { return Vec3{x, y, z} }
	return [WireframeVertexCount]Vec3{
		// Bottom face
		c(lo.X, lo.Y, lo.Z), c(hi.X, lo.Y, lo.Z),
		c(hi.X, lo.Y, lo.Z), c(hi.X, lo.Y, hi.Z),
		c(hi.X, lo.Y, hi.Z), c(lo.X, lo.Y, hi.Z),
		c(lo.X, lo.Y, hi.Z), c(lo.X, lo.Y, lo.Z),
		// Top face
		c(lo.X, hi.Y, lo.Z), c(hi.X, hi.Y, lo.Z),
		c(hi.X, hi.Y, lo.Z), c(hi.X, hi.Y, hi.Z),
		c(hi.X, hi.Y, hi.Z), c(lo.X, hi.Y, hi.Z),
		c(lo.X, hi.Y, hi.Z), c(lo.X, hi.Y, lo.Z),
		// Vertical edges
		c(lo.X, lo.Y, lo.Z), c(lo.X, hi.Y, lo.Z),
		c(hi.X, lo.Y, lo.Z), c(hi.X, hi.Y, lo.Z),
		c(hi.X, lo.Y, hi.Z), c(hi.X, hi.Y, hi.Z),
		c(lo.X, lo.Y, hi.Z), c(lo.X, hi.Y, hi.Z),
	}
}
