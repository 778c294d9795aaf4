package vessel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/partgeom/pkg/math"
	"github.com/Faultbox/partgeom/pkg/part"
)

// Load reads a vessel snapshot from a YAML file.
func Load(path string) (*Vessel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening vessel snapshot: %w", err)
	}
	defer f.Close()

	v, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return v, nil
}

// Decode reads a vessel snapshot from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Vessel, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding vessel snapshot: %w", err)
	}
	return Build(&doc)
}

// Build validates doc and resolves every part's transforms.
func Build(doc *Document) (*Vessel, error) {
	v := &Vessel{
		name:  doc.Name,
		parts: make([]*Part, 0, len(doc.Parts)),
		index: make(map[string]int, len(doc.Parts)),
	}
	vesselM := doc.Transform.Matrix()

	for i := range doc.Parts {
		pd := &doc.Parts[i]
		if _, dup := v.index[pd.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePart, pd.Name)
		}
		p, err := buildPart(pd, vesselM)
		if err != nil {
			return nil, fmt.Errorf("part %d (%s): %w", i, pd.Name, err)
		}
		v.index[pd.Name] = len(v.parts)
		v.parts = append(v.parts, p)
	}
	return v, nil
}

func buildPart(pd *PartDoc, vesselM math.Mat4) (*Part, error) {
	p := &Part{
		name:         pd.Name,
		significance: part.PhysicalSignificance(pd.Physics),
		localToWorld: vesselM.Mul(pd.Transform.Matrix()),
	}

	if pd.RigidBodyMass != nil {
		if p.significance == part.SignificanceNone {
			return nil, ErrRigidBodyWithoutPhysics
		}
		p.rbMass, p.hasRB = *pd.RigidBodyMass, true
	}

	for j, rd := range pd.Resources {
		if rd.Amount < 0 || rd.MaxAmount < 0 || rd.Amount > rd.MaxAmount {
			return nil, fmt.Errorf("%w: %s amount %g of %g", ErrInvalidResource, rd.Name, rd.Amount, rd.MaxAmount)
		}
		if rd.Density < 0 {
			return nil, fmt.Errorf("%w: resource %d (%s) density %g", ErrInvalidResource, j, rd.Name, rd.Density)
		}
		p.resources = append(p.resources, part.Resource{
			Name:      rd.Name,
			Amount:    rd.Amount,
			MaxAmount: rd.MaxAmount,
			Density:   rd.Density,
		})
	}

	if pd.ResourceMass != nil {
		p.resourceMass = *pd.ResourceMass
	} else {
		p.resourceMass = part.CurrentResourceMass(p.resources)
	}

	nodes, err := resolveNodes(pd.Nodes)
	if err != nil {
		return nil, err
	}

	for _, md := range pd.Meshes {
		nodeM := math.Identity()
		if md.Node != "" {
			m, ok := nodes[md.Node]
			if !ok {
				return nil, fmt.Errorf("%w: mesh %q node %q", ErrUnknownMeshNode, md.Name, md.Node)
			}
			nodeM = m
		}
		p.meshes = append(p.meshes, part.Mesh{
			Name: md.Name,
			Bounds: math.Bounds{
				Center:  math.Vec3FromArray(md.Bounds.Center),
				Extents: math.Vec3FromArray(md.Bounds.Extents),
			},
			LocalToWorld: p.localToWorld.Mul(nodeM).Mul(md.Transform.Matrix()),
		})
	}

	return p, nil
}
