package core

import "github.com/zyedidia/generic/mapset"

// PopRegion removes the seed block and every block orthogonally connected
// to it through blocks of the seed's current color.
// Removed blocks are returned in visit order, seed first.
// A seed that is not live removes nothing.
func PopRegion(r *Registry, seed BlockID) []Block {
	region := collectRegion(r, seed)
	for _, b := range region {
		r.Delete(b.ID)
	}
	return region
}

// RegionSize returns how many blocks PopRegion would remove for seed.
func RegionSize(r *Registry, seed BlockID) int {
	return len(collectRegion(r, seed))
}

// collectRegion runs a breadth-first search from seed over same-colored neighbors.
func collectRegion(r *Registry, seed BlockID) []Block {
	start, ok := r.Get(seed)
	if !ok {
		return nil
	}

	visited := mapset.New[Pos]()
	visited.Put(start.Pos)
	queue := []Block{start}
	var region []Block

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)

		for _, n := range r.index.Neighbors6(current.Pos) {
			if visited.Has(n) {
				continue
			}
			nb, ok := r.At(n)
			if !ok || nb.Color != start.Color {
				continue
			}
			visited.Put(n)
			queue = append(queue, nb)
		}
	}

	return region
}
