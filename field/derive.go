package field

// derive fills the direction array from the converged costs. Each free,
// reachable cell points at the neighbor with the strictly lowest cost,
// starting the comparison at its own cost; the first offset in step order
// wins ties. The target never finds a lower neighbor and keeps noDir.
func (f *Field) derive() {
	f.dir = make([]int8, len(f.cost))
	for i := range f.dir {
		f.dir[i] = noDir
	}
	for i, c := range f.cost {
		if f.blocked[i] || c == Unreachable {
			continue
		}
		uc := f.coordinate(i)
		best := c
		for k, s := range f.steps {
			vc := uc.Add(s.Offset)
			if !f.inBounds(vc) {
				continue
			}
			if nc := f.cost[f.index(vc)]; nc < best {
				best = nc
				f.dir[i] = int8(k)
			}
		}
	}
}
