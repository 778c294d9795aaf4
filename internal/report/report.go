// Package report turns parts into mass and bounds summaries.
package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/partgeom/internal/logger"
	"github.com/Faultbox/partgeom/pkg/math"
	"github.com/Faultbox/partgeom/pkg/part"
)

// Box is a bounds summary in the part's facing frame.
type Box struct {
	Center  [3]float32 `yaml:"center"`
	Extents [3]float32 `yaml:"extents"`
	Min     [3]float32 `yaml:"min"`
	Max     [3]float32 `yaml:"max"`
}

func newBox(b math.Bounds) Box {
	return Box{
		Center:  b.Center.Array(),
		Extents: b.Extents.Array(),
		Min:     b.Min().Array(),
		Max:     b.Max().Array(),
	}
}

// Bounds converts the summary back to math.Bounds.
func (b Box) Bounds() math.Bounds {
	return math.Bounds{Center: math.Vec3FromArray(b.Center), Extents: math.Vec3FromArray(b.Extents)}
}

// Part is the report for a single part.
type Part struct {
	Name             string  `yaml:"name"`
	Physics          string  `yaml:"physics"`
	CurrentMass      float32 `yaml:"current_mass"`
	DryMass          float32 `yaml:"dry_mass"`
	WetMass          float32 `yaml:"wet_mass"`
	ResourceMass     float32 `yaml:"resource_mass"`
	ResourceCapacity float32 `yaml:"resource_capacity"`
	Meshes           int     `yaml:"meshes"`
	Bounds           Box     `yaml:"bounds"`
}

// Vessel is the report for every part of a vessel plus totals.
type Vessel struct {
	Name        string  `yaml:"name"`
	Parts       []Part  `yaml:"parts"`
	CurrentMass float32 `yaml:"current_mass"`
	DryMass     float32 `yaml:"dry_mass"`
	WetMass     float32 `yaml:"wet_mass"`
}

// ForPart builds the report for p. It returns an error instead of panicking
// when p's physics significance is unknown.
func ForPart(p part.Part) (Part, error) {
	hasPhysics, err := part.HasPhysics(p)
	if err != nil {
		return Part{}, fmt.Errorf("part %s: %w", p.Name(), err)
	}

	physics := part.SignificanceNone.String()
	if hasPhysics {
		physics = part.SignificanceFull.String()
	}

	meshes := p.Meshes()
	return Part{
		Name:             p.Name(),
		Physics:          physics,
		CurrentMass:      part.CalculateCurrentMass(p),
		DryMass:          part.DryMass(p),
		WetMass:          part.WetMass(p),
		ResourceMass:     p.ResourceMass(),
		ResourceCapacity: part.CapacityResourceMass(p.Resources()),
		Meshes:           len(meshes),
		Bounds:           newBox(part.PartBounds(p)),
	}, nil
}

// ForVessel reports every part using up to workers goroutines (0 means one
// per part). Part reports keep the input order.
func ForVessel[P part.Part](ctx context.Context, name string, parts []P, workers int) (*Vessel, error) {
	out := &Vessel{Name: name, Parts: make([]Part, len(parts))}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, p := range parts {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := ForPart(p)
			if err != nil {
				return err
			}
			out.Parts[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range out.Parts {
		out.CurrentMass += r.CurrentMass
		out.DryMass += r.DryMass
		out.WetMass += r.WetMass
	}
	logger.Debug("vessel report built",
		zap.String("vessel", name),
		zap.Int("parts", len(out.Parts)),
		zap.Float32("wet_mass", out.WetMass),
	)
	return out, nil
}
