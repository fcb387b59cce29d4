package world

// Reachable returns the row-major indices of every non-wall cell in the
// agent's 4-connected region, in BFS order starting at the agent.
// Dirt is irrelevant to reachability: walls are the only obstacle and
// they never change, so the region is the same for every configuration
// reachable from g.
//
// To convert an index back to (r,c), use Coordinate. A Grid that fails
// Validate has no region and yields nil.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Reachable() []int {
	if g.Validate() != nil {
		return nil
	}
	seen := make([]bool, len(g.cells))
	queue := []int{g.agent}
	seen[g.agent] = true

	for qi := 0; qi < len(queue); qi++ {
		ur, uc := g.Coordinate(queue[qi])
		for _, d := range directions {
			dr, dc := d.Offset()
			vr, vc := ur+dr, uc+dc
			if !g.InBounds(vr, vc) {
				continue
			}
			vi := g.index(vr, vc)
			if seen[vi] || g.cells[vi] == Wall {
				continue
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}
	return queue
}

// UnreachableDirt counts Dirt cells outside the agent's region.
// A positive count proves the grid can never be cleaned.
func (g *Grid) UnreachableDirt() int {
	inRegion := make([]bool, len(g.cells))
	for _, i := range g.Reachable() {
		inRegion[i] = true
	}
	n := 0
	for i, t := range g.cells {
		if t == Dirt && !inRegion[i] {
			n++
		}
	}
	return n
}
