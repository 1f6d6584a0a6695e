// Package field builds immutable flow fields over a grid.Grid.
//
// A flow field is a precomputed vector field telling any number of agents,
// in O(1) per query, which neighboring cell to step to in order to reach one
// fixed target while avoiding obstacles. One build amortizes pathfinding
// across every agent sharing the destination.
//
// Build runs in two phases:
//
//  1. Cost propagation. Every cell starts at Unreachable except the target
//     (cost 0). Costs are relaxed outward from the target over the
//     connectivity set (8 neighbors in 2D, 26 in 3D) with integer step
//     weights ≈ 10×distance: 10 for face steps, 14 for planar diagonals and
//     17 for corner diagonals. A cell whose cost improves is re-enqueued,
//     however many times that happens, until no relaxation succeeds.
//  2. Direction derivation. Every free, reachable cell picks the neighbor
//     with the strictly lowest cost, starting the comparison at its own cost.
//     Ties go to the first offset in the fixed order of grid.Neighbors
//     (faces, then edge diagonals, then corners). The target, obstacles and
//     unreachable cells keep the zero vector.
//
// Strategies:
//
//   - StrategyPriority (default): lazy decrease-key min-heap keyed by cost.
//   - StrategyFIFO: plain FIFO worklist with duplicates, the classic
//     wavefront. Produces the same arrays, with more re-processing.
//
// Complexity:
//
//   - StrategyPriority: O(N·d·log(N·d)) time, N = W×H×D, d = 8 or 26.
//   - StrategyFIFO:     pseudo-polynomial worst case, O(N·d·C) where C is the
//     number of distinct cost values a cell can take.
//   - Memory: O(N) for costs, directions and the owned obstacle snapshot.
//   - CostAt, DirectionAt: O(1).
//
// The field copies the obstacle mask during Build and never looks at the
// source grid again, so the grid may be mutated as soon as Build returns.
// All lookups are read-only and safe for concurrent use.
//
// Errors:
//
//   - ErrNilGrid:           Build called with a nil source.
//   - ErrBadDims:           the source reports a dimensionality other than 2 or 3.
//   - ErrEmptyGrid:         the source reports a non-positive extent.
//   - ErrTargetOutOfBounds: the target lies outside the grid.
//   - ErrTargetBlocked:     the target cell is an obstacle.
//   - ErrOutOfBounds:       a lookup coordinate lies outside the grid.
//   - ErrNoPath:            Path started from an unreachable or blocked cell.
package field
