package report

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/partgeom/internal/vessel"
	"github.com/Faultbox/partgeom/pkg/part"
)

const fuelTank = `
name: Test
parts:
  - name: tank
    physics: full
    rigid_body_mass: 10
    resource_mass: 1
    meshes:
      - name: body
        bounds: {center: [0, 0, 0], extents: [1, 1, 1]}
    resources:
      - {name: LiquidFuel, amount: 5, max_amount: 8, density: 0.2}
  - name: fin
    physics: none
`

func loadVessel(t *testing.T, doc string) *vessel.Vessel {
	t.Helper()
	v, err := vessel.Decode(strings.NewReader(doc))
	require.NoError(t, err)
	return v
}

func TestForPart(t *testing.T) {
	v := loadVessel(t, fuelTank)
	tank, _ := v.Find("tank")

	r, err := ForPart(tank)
	require.NoError(t, err)
	assert.Equal(t, "tank", r.Name)
	assert.Equal(t, "full", r.Physics)
	assert.Equal(t, float32(10), r.CurrentMass)
	assert.Equal(t, float32(9), r.DryMass)
	assert.InDelta(t, 10.6, r.WetMass, 1e-5)
	assert.InDelta(t, 1.6, r.ResourceCapacity, 1e-6)
	assert.Equal(t, 1, r.Meshes)
	assert.Equal(t, [3]float32{1, 1, 1}, roundVec(r.Bounds.Extents))
}

func TestForVessel(t *testing.T) {
	v := loadVessel(t, fuelTank)

	for _, workers := range []int{0, 1, 4} {
		r, err := ForVessel(context.Background(), v.Name(), v.Parts(), workers)
		require.NoError(t, err)
		require.Len(t, r.Parts, 2)
		assert.Equal(t, "tank", r.Parts[0].Name)
		assert.Equal(t, "fin", r.Parts[1].Name)
		assert.Equal(t, "none", r.Parts[1].Physics)
		assert.Equal(t, float32(10), r.CurrentMass)
		assert.Equal(t, float32(9), r.DryMass)
		assert.InDelta(t, 10.6, r.WetMass, 1e-5)
		// Physics-less part without meshes: zero box.
		assert.Equal(t, Box{}, r.Parts[1].Bounds)
	}
}

type badPart struct{ *vessel.Part }

func (badPart) PhysicalSignificance() part.PhysicalSignificance { return part.PhysicalSignificance(3) }

func TestForVesselUnknownSignificance(t *testing.T) {
	v := loadVessel(t, fuelTank)
	parts := []part.Part{v.Parts()[0], badPart{v.Parts()[1]}}

	_, err := ForVessel(context.Background(), "bad", parts, 2)
	require.Error(t, err)
	var unknown *part.UnknownSignificanceError
	assert.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "part fin")
}

func TestForVesselCancelled(t *testing.T) {
	v := loadVessel(t, fuelTank)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ForVessel(ctx, v.Name(), v.Parts(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteText(t *testing.T) {
	v := loadVessel(t, fuelTank)
	r, err := ForVessel(context.Background(), v.Name(), v.Parts(), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatText))
	out := buf.String()
	assert.Contains(t, out, "Vessel: Test")
	assert.Contains(t, out, "tank")
	assert.Contains(t, out, "10.6000")
	assert.Contains(t, out, "TOTAL")
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	v := loadVessel(t, fuelTank)
	r, err := ForVessel(context.Background(), v.Name(), v.Parts(), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, "YAML"))

	var back Vessel
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r.Name, back.Name)
	require.Len(t, back.Parts, 2)
	assert.Equal(t, r.Parts[0].DryMass, back.Parts[0].DryMass)
	assert.Contains(t, buf.String(), "wet_mass:")
}

func TestWriteOBJ(t *testing.T) {
	v := loadVessel(t, fuelTank)
	r, err := ForVessel(context.Background(), v.Name(), v.Parts(), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatOBJ))

	var verts, lines, objects int
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "l "):
			lines++
		case strings.HasPrefix(line, "o "):
			objects++
		}
	}
	assert.Equal(t, 2, objects)
	assert.Equal(t, 48, verts)
	assert.Equal(t, 24, lines)
	assert.Contains(t, buf.String(), "l 47 48")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, &Vessel{}, "csv")
	assert.ErrorContains(t, err, `unknown report format "csv"`)
}

func TestLanderSnapshot(t *testing.T) {
	v, err := vessel.Load(filepath.Join("..", "vessel", "testdata", "lander.yaml"))
	require.NoError(t, err)

	r, err := ForVessel(context.Background(), v.Name(), v.Parts(), 2)
	require.NoError(t, err)

	pod := r.Parts[0]
	// The model node puts the hatch at part +Y, which the facing frame
	// turns into -Z.
	assert.InDelta(t, 0.625, pod.Bounds.Extents[0], 1e-4)
	assert.InDelta(t, 0.625, pod.Bounds.Extents[1], 1e-4)
	assert.InDelta(t, -0.55, pod.Bounds.Min[2], 1e-4)
	assert.InDelta(t, 0.5, pod.Bounds.Max[2], 1e-4)
}

func roundVec(v [3]float32) [3]float32 {
	for i := range v {
		v[i] = float32(int(v[i]*1e4+0.5)) / 1e4
	}
	return v
}
