package report

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/partgeom/pkg/math"
)

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatOBJ  = "obj"
)

// Write renders v in the named format.
func Write(w io.Writer, v *Vessel, format string) error {
	switch strings.ToLower(format) {
	case "", FormatText:
		return WriteText(w, v)
	case FormatYAML:
		return WriteYAML(w, v)
	case FormatOBJ:
		return WriteOBJ(w, v)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteText prints a human-readable table.
func WriteText(w io.Writer, v *Vessel) error {
	ew := &errWriter{w: w}
	ew.printf("Vessel: %s\n", v.Name)
	ew.printf("Parts:  %d\n\n", len(v.Parts))
	ew.printf("  %-20s %-5s %10s %10s %10s  %s\n", "PART", "PHYS", "CURRENT", "DRY", "WET", "EXTENTS")
	for _, p := range v.Parts {
		e := p.Bounds.Extents
		ew.printf("  %-20s %-5s %10.4f %10.4f %10.4f  (%.3f, %.3f, %.3f)\n",
			p.Name, p.Physics, p.CurrentMass, p.DryMass, p.WetMass, e[0], e[1], e[2])
	}
	ew.printf("\n  %-20s %-5s %10.4f %10.4f %10.4f\n", "TOTAL", "", v.CurrentMass, v.DryMass, v.WetMass)
	return ew.err
}

// WriteYAML writes the report as a YAML document.
func WriteYAML(w io.Writer, v *Vessel) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

// WriteOBJ writes each part's facing-frame box as a Wavefront OBJ line object.
func WriteOBJ(w io.Writer, v *Vessel) error {
	ew := &errWriter{w: w}
	ew.printf("# %s\n", v.Name)
	base := 1 // OBJ indices are 1-based and global
	for _, p := range v.Parts {
		ew.printf("o %s\n", p.Name)
		verts := p.Bounds.Bounds().Wireframe()
		for _, vert := range verts {
			ew.printf("v %g %g %g\n", vert.X, vert.Y, vert.Z)
		}
		for i := 0; i < math.WireframeVertexCount; i += 2 {
			ew.printf("l %d %d\n", base+i, base+i+1)
		}
		base += math.WireframeVertexCount
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
