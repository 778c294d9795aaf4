package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformPoint(t *testing.T) {
	// Translate by (10, 20, 30)
	m := Translate(10, 20, 30)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{11, 22, 33}
	if result != expected {
		t.Errorf("TransformPoint: got %v, want %v", result, expected)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	p := [3]float32{1, 2, 3}
	result := m.TransformPoint(p)

	expected := [3]float32{2, 4, 6}
	if result != expected {
		t.Errorf("TransformPoint with scale: got %v, want %v", result, expected)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	p := [3]float32{1, 0, 0}           // Point on X axis
	result := m.TransformPoint(p)

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result[0]) > 0.001 || abs(result[1]) > 0.001 || abs(result[2]+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := TRS(Vec3{1, -2, 3}, QuatFromAxisAngle(Vec3{0, 1, 0}, 0.7), Vec3{2, 0.5, 3})
	p := Vec3{4, 5, 6}

	back := m.InverseTransformVec3(m.TransformVec3(p))
	if !back.ApproxEqual(p, 1e-4) {
		t.Errorf("InverseTransformVec3(TransformVec3(p)) = %v, want %v", back, p)
	}

	prod := m.Mul(m.Inverse())
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(prod[i]-id[i]) > 1e-4 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, prod[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := Scale(0, 1, 1)
	if m.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestTRSOrder(t *testing.T) {
	// Scale, then rotate 90 degrees about Z, then translate.
	m := TRS(Vec3{10, 0, 0}, QuatFromAxisAngle(Vec3{0, 0, 1}, float32(math.Pi/2)), Vec3{2, 1, 1})
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{10, 2, 0}
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("TRS point: got %v, want %v", got, want)
	}
	if m.Translation() != (Vec3{10, 0, 0}) {
		t.Errorf("Translation: got %v", m.Translation())
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
