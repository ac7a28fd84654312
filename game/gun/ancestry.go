package gun

import (
	"github.com/jamesrusso12/Ghost-Defiant-sub001/common/types"
)

// MaxAncestryDepth bounds every walk up the scene graph. A chain deeper than
// this, or a cycle, is treated as ambiguous.
const MaxAncestryDepth = 16

// isExcluded reports whether id, or one of its ancestors, belongs to the
// exclusion set. Unidentified bodies and ambiguous ancestry are excluded
// too: a missed impact is preferred over an impact on the wielder.
func isExcluded(graph SceneGraph, exclusions ExclusionSet, id types.BodyID) bool {
	if id == types.NoBody || exclusions.Contains(id) {
		return true
	}

	if graph == nil || len(exclusions) == 0 {
		return false
	}

	seen := map[types.BodyID]struct{}{id: {}}
	current := id

	for depth := 0; depth < MaxAncestryDepth; depth++ {
		parent, ok := graph.Parent(current)
		if !ok {
			return false
		}

		if exclusions.Contains(parent) {
			return true
		}

		if _, loop := seen[parent]; loop {
			return true
		}

		seen[parent] = struct{}{}
		current = parent
	}

	return true
}

// descendants lists every body below roots, roots themselves left out. The
// walk goes at most MaxAncestryDepth levels down and visits each body once.
func descendants(graph SceneGraph, roots ExclusionSet) []types.BodyID {
	if graph == nil {
		return nil
	}

	seen := make(map[types.BodyID]struct{}, len(roots))
	level := make([]types.BodyID, 0, len(roots))
	for id := range roots {
		seen[id] = struct{}{}
		level = append(level, id)
	}

	res := make([]types.BodyID, 0)
	for depth := 0; depth < MaxAncestryDepth && len(level) > 0; depth++ {
		next := make([]types.BodyID, 0)
		for _, id := range level {
			for _, child := range graph.Children(id) {
				if _, ok := seen[child]; ok || child == types.NoBody {
					continue
				}
				seen[child] = struct{}{}
				res = append(res, child)
				next = append(next, child)
			}
		}
		level = next
	}

	return res
}

// findDamageable looks the capability up on id, then on its ancestors.
func findDamageable(graph SceneGraph, id types.BodyID) (Damageable, bool) {
	if graph == nil || id == types.NoBody {
		return nil, false
	}

	current := id
	for depth := 0; depth <= MaxAncestryDepth; depth++ {
		if damageable, ok := graph.Damageable(current); ok {
			return damageable, true
		}

		parent, ok := graph.Parent(current)
		if !ok {
			return nil, false
		}
		current = parent
	}

	return nil, false
}

func applyDamage(graph SceneGraph, impact ImpactEvent, amount float64) bool {
	damageable, ok := findDamageable(graph, impact.Target)
	if !ok {
		return false
	}

	damageable.ApplyDamage(amount, impact)
	return true
}
