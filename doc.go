// Package flowfield computes flow fields: precomputed, grid-wide vector
// fields that tell any number of agents, in O(1) per query, which neighboring
// cell to step to in order to reach one shared target while avoiding
// obstacles.
//
// One propagation pass is traded for unlimited cheap lookups, the usual way
// to steer crowds of game units toward a common destination.
//
// Everything is organized under these subpackages:
//
//	grid/     - dense 2D/3D obstacle mask, boundary-as-wall queries, region labelling
//	field/    - cost propagation (10/14/17 step weights) and best-direction derivation
//	agent/    - position holders that query a field and advance one cell per tick
//	scenario/ - YAML layouts: grid size, obstacle boxes, target, agent starts
//	export/   - CSV cell dumps, cost statistics, ASCII arrow maps
//
// Quick ASCII example (target T, 5×3 open grid):
//
//	v////
//	T<<<<
//	^\\\\
//
// Control flow is one-directional: Grid → Field (built once) → Agent
// (queried every tick). A field copies what it needs from the grid, so the
// grid may be edited as soon as the field is built.
//
//	go run github.com/katalvlaran/flowfield/cmd/flowfield -v
package flowfield
