package vessel

import (
	"fmt"

	"github.com/Faultbox/partgeom/pkg/math"
)

// resolveNodes returns each node's matrix relative to the part root:
// parent chain * Position * Rotation * Scale.
func resolveNodes(nodes []NodeDoc) (map[string]math.Mat4, error) {
	byName := make(map[string]*NodeDoc, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if _, dup := byName[n.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name)
		}
		byName[n.Name] = n
	}

	resolved := make(map[string]math.Mat4, len(nodes))
	visiting := make(map[string]bool)

	var resolve func(n *NodeDoc) (math.Mat4, error)
	resolve = func(n *NodeDoc) (math.Mat4, error) {
		if m, ok := resolved[n.Name]; ok {
			return m, nil
		}
		if visiting[n.Name] {
			return math.Mat4{}, fmt.Errorf("%w: through %q", ErrNodeCycle, n.Name)
		}
		visiting[n.Name] = true

		local := n.Transform.Matrix()
		if n.Parent != "" {
			parent, ok := byName[n.Parent]
			if !ok {
				return math.Mat4{}, fmt.Errorf("%w: %q parent of %q", ErrUnknownParent, n.Parent, n.Name)
			}
			pm, err := resolve(parent)
			if err != nil {
				return math.Mat4{}, err
			}
			local = pm.Mul(local)
		}

		resolved[n.Name] = local
		return local, nil
	}

	for i := range nodes {
		if _, err := resolve(&nodes[i]); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}
