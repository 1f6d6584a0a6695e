package grid

// NoComponent labels blocked cells in the slice returned by Components.
const NoComponent = -1

// Components finds all connected regions of free cells under full 8 (2D) or
// 26 (3D) connectivity, matching the adjacency flow fields propagate over.
// Returns a label per cell (row-major; NoComponent for blocked cells) and the
// number of regions. Labels are assigned in scan order starting from 0.
//
// Two free cells share a label exactly when a field built on one of them
// reaches the other.
//
// Time:   O(W·H·D·d), where d = 8 or 26.
// Memory: O(W·H·D) for labels and the BFS queue.
func (g *Grid) Components() (labels []int, count int) {
	total := len(g.blocked)
	labels = make([]int, total)
	for i := range labels {
		labels[i] = NoComponent
	}
	offsets := Neighbors(g.dims)
	queue := make([]int, 0, total)

	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || labels[i0] != NoComponent {
			continue
		}
		// BFS to flood the component
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range offsets {
				v := u.Add(d)
				if g.IsObstacle(v) {
					continue
				}
				vi := g.Index(v)
				if labels[vi] == NoComponent {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}
	return labels, count
}

// Connected reports whether a and b are free cells in the same region.
// Complexity: O(W·H·D·d); callers testing many pairs should use Components.
func (g *Grid) Connected(a, b Coord) bool {
	if g.IsObstacle(a) || g.IsObstacle(b) {
		return false
	}
	labels, _ := g.Components()
	return labels[g.Index(a)] == labels[g.Index(b)]
}
