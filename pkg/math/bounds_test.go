package math

import "testing"

func TestBoundsMinMax(t *testing.T) {
	b := BoundsFromMinMax(Vec3{-1, 0, 2}, Vec3{3, 4, 6})
	if b.Center != (Vec3{1, 2, 4}) {
		t.Errorf("Center = %v, want (1,2,4)", b.Center)
	}
	if b.Extents != (Vec3{2, 2, 2}) {
		t.Errorf("Extents = %v, want (2,2,2)", b.Extents)
	}
	if b.Min() != (Vec3{-1, 0, 2}) || b.Max() != (Vec3{3, 4, 6}) {
		t.Errorf("Min/Max = %v/%v", b.Min(), b.Max())
	}
	if b.Size() != (Vec3{4, 4, 4}) {
		t.Errorf("Size = %v", b.Size())
	}
}

func TestBoundsEncapsulateIncludesOrigin(t *testing.T) {
	// The zero Bounds sits at the origin, so encapsulating grows from there.
	var b Bounds
	b = b.Encapsulate(Vec3{2, 2, 2})
	if b.Min() != (Vec3{}) || b.Max() != (Vec3{2, 2, 2}) {
		t.Errorf("Encapsulate from zero: min %v max %v", b.Min(), b.Max())
	}
}

func TestBoundsCorners(t *testing.T) {
	b := Bounds{Center: Vec3{1, 1, 1}, Extents: Vec3{1, 2, 3}}
	corners := b.Corners()

	seen := make(map[Vec3]bool)
	for _, c := range corners {
		seen[c] = true
		if c.X != 0 && c.X != 2 {
			t.Errorf("corner X out of range: %v", c)
		}
		if c.Y != -1 && c.Y != 3 {
			t.Errorf("corner Y out of range: %v", c)
		}
		if c.Z != -2 && c.Z != 4 {
			t.Errorf("corner Z out of range: %v", c)
		}
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(seen))
	}
	if corners[0] != b.Min() || corners[7] != b.Max() {
		t.Errorf("first/last corner should be min/max, got %v/%v", corners[0], corners[7])
	}
}

func TestBoundsUnion(t *testing.T) {
	var u BoundsUnion
	if u.Bounds() != (Bounds{}) {
		t.Errorf("empty union should be zero Bounds, got %v", u.Bounds())
	}

	u.Add(Vec3{5, 5, 5})
	b := u.Bounds()
	if b.Center != (Vec3{5, 5, 5}) || b.Extents != (Vec3{}) {
		t.Errorf("single point union = %v, want point box at (5,5,5)", b)
	}

	u.Add(Vec3{7, 3, 5})
	b = u.Bounds()
	if b.Min() != (Vec3{5, 3, 5}) || b.Max() != (Vec3{7, 5, 5}) {
		t.Errorf("union min/max = %v/%v", b.Min(), b.Max())
	}
	if u.Len() != 2 {
		t.Errorf("Len = %d, want 2", u.Len())
	}
}

func TestBoundsWireframe(t *testing.T) {
	b := BoundsFromMinMax(Vec3{0, 0, 0}, Vec3{1, 2, 3})
	verts := b.Wireframe()

	for i := 0; i < WireframeVertexCount; i += 2 {
		d := verts[i+1].Sub(verts[i])
		// Every edge runs along exactly one axis.
		nonZero := 0
		for _, c := range []float32{d.X, d.Y, d.Z} {
			if c != 0 {
				nonZero++
			}
		}
		if nonZero != 1 {
			t.Errorf("edge %d is not axis aligned: %v -> %v", i/2, verts[i], verts[i+1])
		}
	}
}
